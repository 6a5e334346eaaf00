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

const uniqueViolation = "23505"

// UserAdapter implements user persistence in Postgres.
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter.
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a user and populates its id.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	query, args, err := a.db.Insert("users").
		Rows(goqu.Record{
			"username":      user.Username,
			"password_hash": user.PasswordHash,
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return apperrors.NewConflictError("username already registered")
		}
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// GetByID retrieves a user by id.
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return a.getOne(ctx, "id", id)
}

// GetByUsername retrieves a user by username.
func (a *UserAdapter) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return a.getOne(ctx, "username", username)
}

func (a *UserAdapter) getOne(ctx context.Context, column string, value interface{}) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT id, username, password_hash FROM users WHERE %s = $1`, column)

	user := &entities.User{}
	err := a.client.DB().QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}
