package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/pkg/errors"
)

func TestRecommendationServiceCreate(t *testing.T) {
	var created *entities.Recommendation
	recRepo := &stubRecommendationRepo{
		createFn: func(ctx context.Context, rec *entities.Recommendation) error {
			rec.ID = 11
			created = rec
			return nil
		},
	}
	svc := NewRecommendationService(recRepo, existingDoctor(1), &stubCatalog{})

	before := time.Now().UTC()
	rec, err := svc.Create(context.Background(), 1, "morning routine", []int64{3, 1, 3})
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, []int64{3, 1, 3}, rec.ProductIDs)

	_, parseErr := uuid.Parse(rec.Identifier)
	assert.NoError(t, parseErr)

	validity := rec.ExpiresAt.Sub(rec.CreatedAt)
	assert.Equal(t, entities.RecommendationValidity, validity)
	assert.False(t, rec.CreatedAt.Before(before))
	assert.False(t, rec.CreatedAt.After(after))
}

func TestRecommendationServiceCreateRequiresProducts(t *testing.T) {
	svc := NewRecommendationService(&stubRecommendationRepo{}, existingDoctor(1), &stubCatalog{})

	_, err := svc.Create(context.Background(), 1, "", nil)

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.TypeOf(err))
}

func TestRecommendationServiceCreateUnknownDoctor(t *testing.T) {
	svc := NewRecommendationService(&stubRecommendationRepo{}, &stubDoctorRepo{}, &stubCatalog{})

	_, err := svc.Create(context.Background(), 42, "", []int64{1})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRecommendationServiceGetByIdentifier(t *testing.T) {
	active := &entities.Recommendation{
		Identifier: "abc",
		DoctorID:   1,
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
		ProductIDs: []int64{1, 2},
	}
	recRepo := &stubRecommendationRepo{
		getByIdentifierFn: func(ctx context.Context, identifier string) (*entities.Recommendation, error) {
			return active, nil
		},
	}
	svc := NewRecommendationService(recRepo, &stubDoctorRepo{}, &stubCatalog{})

	rec, err := svc.GetByIdentifier(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, active, rec)
}

func TestRecommendationServiceGetByIdentifierExpired(t *testing.T) {
	recRepo := &stubRecommendationRepo{
		getByIdentifierFn: func(ctx context.Context, identifier string) (*entities.Recommendation, error) {
			return &entities.Recommendation{
				Identifier: identifier,
				CreatedAt:  time.Now().UTC().Add(-8 * 24 * time.Hour),
				ExpiresAt:  time.Now().UTC().Add(-time.Second),
			}, nil
		},
	}
	svc := NewRecommendationService(recRepo, &stubDoctorRepo{}, &stubCatalog{})

	_, err := svc.GetByIdentifier(context.Background(), "stale")

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRecommendationServiceResolveProductsSkipsFailures(t *testing.T) {
	catalog := &stubCatalog{
		getProductFn: func(ctx context.Context, productID int64) (*entities.ProductDetail, error) {
			if productID == 2 {
				return nil, errors.NewExternalError("catalog unavailable", nil)
			}
			return &entities.ProductDetail{ID: productID, Title: "Moisturizer"}, nil
		},
	}
	svc := NewRecommendationService(&stubRecommendationRepo{}, &stubDoctorRepo{}, catalog)

	details := svc.ResolveProducts(context.Background(), []int64{1, 2, 3})

	require.Len(t, details, 2)
	assert.Equal(t, int64(1), details[0].ID)
	assert.Equal(t, int64(3), details[1].ID)
}
