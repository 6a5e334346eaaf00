package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// DoctorAdapter implements doctor persistence in Postgres.
type DoctorAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDoctorAdapter creates a new doctor adapter.
func NewDoctorAdapter(client *postgres.Client) repositories.DoctorRepository {
	return &DoctorAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a doctor and populates its id. average_rating starts at 0.
func (a *DoctorAdapter) Create(ctx context.Context, doctor *entities.Doctor) error {
	record := goqu.Record{
		"name":           doctor.Name,
		"specialization": doctor.Specialization,
		"average_rating": 0.0,
		"created_at":     doctor.CreatedAt,
	}
	if doctor.UserID != nil {
		record["user_id"] = *doctor.UserID
	}

	query, args, err := a.db.Insert("doctors").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build doctor insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&doctor.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return apperrors.NewConflictError("user is already linked to a doctor profile")
		}
		return apperrors.NewInternalError("failed to create doctor", err)
	}

	doctor.AverageRating = 0.0
	return nil
}

// GetByID retrieves a doctor by id.
func (a *DoctorAdapter) GetByID(ctx context.Context, id int64) (*entities.Doctor, error) {
	return a.getOne(ctx, "id", id)
}

// GetByUserID retrieves the doctor profile linked to a user account.
func (a *DoctorAdapter) GetByUserID(ctx context.Context, userID int64) (*entities.Doctor, error) {
	return a.getOne(ctx, "user_id", userID)
}

func (a *DoctorAdapter) getOne(ctx context.Context, column string, value interface{}) (*entities.Doctor, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, specialization, average_rating, created_at
		FROM doctors
		WHERE %s = $1
	`, column)

	doctor := &entities.Doctor{}
	err := a.client.DB().QueryRowContext(ctx, query, value).Scan(
		&doctor.ID,
		&doctor.UserID,
		&doctor.Name,
		&doctor.Specialization,
		&doctor.AverageRating,
		&doctor.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("doctor not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get doctor", err)
	}

	return doctor, nil
}

// List returns doctors with at least the given average rating, paginated.
func (a *DoctorAdapter) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, user_id, name, specialization, average_rating, created_at
		FROM doctors
		WHERE average_rating >= $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	rows, err := a.client.DB().QueryContext(ctx, query, filter.MinRating, filter.Offset, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list doctors", err)
	}
	defer rows.Close()

	doctors := []*entities.Doctor{}
	for rows.Next() {
		doctor := &entities.Doctor{}
		if err := rows.Scan(
			&doctor.ID,
			&doctor.UserID,
			&doctor.Name,
			&doctor.Specialization,
			&doctor.AverageRating,
			&doctor.CreatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan doctor row", err)
		}
		doctors = append(doctors, doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate doctor rows", err)
	}

	return doctors, nil
}
