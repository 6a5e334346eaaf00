package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// ReviewAdapter implements review persistence and the read-side
// aggregations in Postgres.
type ReviewAdapter struct {
	client *postgres.Client
	db     *sqlx.DB
}

// NewReviewAdapter creates a new review adapter.
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     sqlx.NewDb(client.DB(), "postgres"),
	}
}

// CreateAndRecalculate inserts the review and refreshes the doctor's
// average_rating inside one transaction. The UPDATE takes a row lock on
// the doctors row, so concurrent reviews for the same doctor serialize
// and each recomputation sees every committed rating plus its own insert.
func (a *ReviewAdapter) CreateAndRecalculate(ctx context.Context, review *entities.Review) (float64, error) {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to begin review transaction", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO reviews (doctor_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, insertQuery,
		review.DoctorID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to insert review", err)
	}

	updateQuery := `
		UPDATE doctors
		SET average_rating = (
			SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0)
			FROM reviews
			WHERE doctor_id = $1
		)
		WHERE id = $1
		RETURNING average_rating
	`
	var newAverage float64
	err = tx.QueryRowContext(ctx, updateQuery, review.DoctorID).Scan(&newAverage)
	if err == sql.ErrNoRows {
		return 0, apperrors.NewNotFoundError("doctor not found")
	}
	if err != nil {
		return 0, apperrors.NewInternalError("failed to recalculate average rating", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.NewInternalError("failed to commit review transaction", err)
	}

	return newAverage, nil
}

// ListByDoctor returns all reviews for a doctor, newest first.
func (a *ReviewAdapter) ListByDoctor(ctx context.Context, doctorID int64) ([]*entities.Review, error) {
	query := `
		SELECT id, doctor_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE doctor_id = $1
		ORDER BY created_at DESC, id DESC
	`

	reviews := []*entities.Review{}
	if err := a.db.SelectContext(ctx, &reviews, query, doctorID); err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}

	return reviews, nil
}

// CountByDoctor returns the doctor's total review count.
func (a *ReviewAdapter) CountByDoctor(ctx context.Context, doctorID int64) (int, error) {
	var count int
	err := a.client.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE doctor_id = $1`, doctorID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count reviews", err)
	}
	return count, nil
}

// MonthlyTrends groups the doctor's reviews by calendar year-month.
// TO_CHAR with a zero-padded month yields periods that sort
// chronologically, so the textual ORDER BY matches (year, month) order.
func (a *ReviewAdapter) MonthlyTrends(ctx context.Context, doctorID int64) ([]entities.RatingTrendPoint, error) {
	query := `
		SELECT TO_CHAR(created_at, 'YYYY-MM') AS period,
		       ROUND(AVG(rating)::numeric, 2) AS average_rating,
		       COUNT(*) AS total_ratings
		FROM reviews
		WHERE doctor_id = $1
		GROUP BY TO_CHAR(created_at, 'YYYY-MM')
		ORDER BY period ASC
	`

	trends := []entities.RatingTrendPoint{}
	if err := a.db.SelectContext(ctx, &trends, query, doctorID); err != nil {
		return nil, apperrors.NewInternalError("failed to compute monthly trends", err)
	}

	return trends, nil
}

// CommentsByDoctor returns the non-empty review comments for a doctor.
// Whitespace-only comments are filtered out by the caller.
func (a *ReviewAdapter) CommentsByDoctor(ctx context.Context, doctorID int64) ([]string, error) {
	query := `
		SELECT comment
		FROM reviews
		WHERE doctor_id = $1 AND comment IS NOT NULL AND comment <> ''
	`

	comments := []string{}
	if err := a.db.SelectContext(ctx, &comments, query, doctorID); err != nil {
		return nil, apperrors.NewInternalError("failed to load review comments", err)
	}

	return comments, nil
}
