package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/pkg/errors"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	bcryptCost        = 12
)

// UserService handles account registration and credential checks.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account with a bcrypt password hash. Username
// uniqueness is enforced by the repository and surfaces as a conflict.
func (s *UserService) Register(ctx context.Context, username, password string) (*entities.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return nil, errors.NewValidationError("username must be at least 3 characters")
	}
	if len(password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both return the same unauthorized error so callers
// cannot probe which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}
	return user, nil
}

// GetByID loads a single account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
