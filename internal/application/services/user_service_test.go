package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/pkg/errors"
)

func TestUserServiceRegister(t *testing.T) {
	var stored *entities.User
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *entities.User) error {
			user.ID = 5
			stored = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), "  drokafor  ", "s3cret!")

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "drokafor", user.Username)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret!")))
}

func TestUserServiceRegisterValidation(t *testing.T) {
	svc := NewUserService(&stubUserRepo{})

	_, err := svc.Register(context.Background(), "ab", "longenough")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.TypeOf(err))

	_, err = svc.Register(context.Background(), "valid", "short")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.TypeOf(err))
}

func TestUserServiceAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entities.User, error) {
			if username == "drokafor" {
				return &entities.User{ID: 5, Username: username, PasswordHash: string(hash)}, nil
			}
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Authenticate(context.Background(), "drokafor", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)

	_, err = svc.Authenticate(context.Background(), "drokafor", "wrong")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.TypeOf(err))

	// Unknown usernames surface the identical unauthorized error.
	_, err = svc.Authenticate(context.Background(), "ghost", "s3cret!")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.TypeOf(err))
}
