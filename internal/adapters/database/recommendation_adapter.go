package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// RecommendationAdapter implements recommendation persistence in
// Postgres.
type RecommendationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRecommendationAdapter creates a new recommendation adapter.
func NewRecommendationAdapter(client *postgres.Client) repositories.RecommendationRepository {
	return &RecommendationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts the recommendation and its product links in one
// transaction. Product ids are stored as given: no dedup, no catalog
// validation.
func (a *RecommendationAdapter) Create(ctx context.Context, rec *entities.Recommendation) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin recommendation transaction", err)
	}
	defer tx.Rollback()

	query, args, err := a.db.Insert("recommendations").
		Rows(goqu.Record{
			"identifier": rec.Identifier,
			"doctor_id":  rec.DoctorID,
			"notes":      sql.NullString{String: rec.Notes, Valid: rec.Notes != ""},
			"created_at": rec.CreatedAt,
			"expires_at": rec.ExpiresAt,
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build recommendation insert query", err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		return apperrors.NewInternalError("failed to insert recommendation", err)
	}

	if len(rec.ProductIDs) > 0 {
		records := make([]interface{}, 0, len(rec.ProductIDs))
		for _, productID := range rec.ProductIDs {
			records = append(records, goqu.Record{
				"recommendation_id": rec.ID,
				"product_id":        productID,
			})
		}

		linkQuery, linkArgs, err := a.db.Insert("product_recommendation_links").Rows(records...).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build link insert query", err)
		}
		if _, err := tx.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
			return apperrors.NewInternalError("failed to insert product links", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit recommendation transaction", err)
	}

	return nil
}

// GetByIdentifier loads a recommendation and its product ids by public
// identifier, expired or not.
func (a *RecommendationAdapter) GetByIdentifier(ctx context.Context, identifier string) (*entities.Recommendation, error) {
	query := `
		SELECT id, identifier, doctor_id, COALESCE(notes, ''), created_at, expires_at
		FROM recommendations
		WHERE identifier = $1
	`

	rec := &entities.Recommendation{}
	err := a.client.DB().QueryRowContext(ctx, query, identifier).Scan(
		&rec.ID,
		&rec.Identifier,
		&rec.DoctorID,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("recommendation not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get recommendation", err)
	}

	linkQuery := `
		SELECT product_id
		FROM product_recommendation_links
		WHERE recommendation_id = $1
		ORDER BY id
	`
	rows, err := a.client.DB().QueryContext(ctx, linkQuery, rec.ID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load product links", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		if err := rows.Scan(&productID); err != nil {
			return nil, apperrors.NewInternalError("failed to scan product link", err)
		}
		rec.ProductIDs = append(rec.ProductIDs, productID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate product links", err)
	}

	return rec, nil
}

// TopProducts ranks product ids by link frequency across the doctor's
// recommendations. Ties break on ascending product id so the ordering is
// deterministic across stores.
func (a *RecommendationAdapter) TopProducts(ctx context.Context, doctorID int64, limit int) ([]entities.ProductCount, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT l.product_id, COUNT(*) AS recommendation_count
		FROM product_recommendation_links l
		JOIN recommendations r ON r.id = l.recommendation_id
		WHERE r.doctor_id = $1
		GROUP BY l.product_id
		ORDER BY COUNT(*) DESC, l.product_id ASC
		LIMIT $2
	`

	rows, err := a.client.DB().QueryContext(ctx, query, doctorID, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to rank products", err)
	}
	defer rows.Close()

	counts := []entities.ProductCount{}
	for rows.Next() {
		var pc entities.ProductCount
		if err := rows.Scan(&pc.ProductID, &pc.Count); err != nil {
			return nil, apperrors.NewInternalError("failed to scan product count", err)
		}
		counts = append(counts, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate product counts", err)
	}

	return counts, nil
}

// CountByDoctor returns the number of recommendations a doctor has made.
func (a *RecommendationAdapter) CountByDoctor(ctx context.Context, doctorID int64) (int, error) {
	var count int
	err := a.client.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recommendations WHERE doctor_id = $1`, doctorID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count recommendations", err)
	}
	return count, nil
}

// CountLinksByDoctor returns the total number of product links across
// the doctor's recommendations.
func (a *RecommendationAdapter) CountLinksByDoctor(ctx context.Context, doctorID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM product_recommendation_links l
		JOIN recommendations r ON r.id = l.recommendation_id
		WHERE r.doctor_id = $1
	`

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, doctorID).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count product links", err)
	}
	return count, nil
}
