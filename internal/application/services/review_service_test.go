package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/pkg/errors"
)

func existingDoctor(id int64) *stubDoctorRepo {
	return &stubDoctorRepo{
		getByIDFn: func(ctx context.Context, doctorID int64) (*entities.Doctor, error) {
			if doctorID == id {
				return &entities.Doctor{ID: id, Name: "Dr. Okafor"}, nil
			}
			return nil, errors.NewNotFoundError("doctor not found")
		},
	}
}

func TestReviewServiceCreate(t *testing.T) {
	reviewRepo := &stubReviewRepo{
		createAndRecalcFn: func(ctx context.Context, review *entities.Review) (float64, error) {
			review.ID = 7
			return 4.33, nil
		},
	}
	svc := NewReviewService(reviewRepo, existingDoctor(1))

	average, err := svc.Create(context.Background(), &entities.Review{
		DoctorID: 1,
		UserID:   2,
		Rating:   5,
		Comment:  "Excellent care",
	})

	require.NoError(t, err)
	assert.Equal(t, 4.33, average)
}

func TestReviewServiceCreateRejectsRatingOutOfRange(t *testing.T) {
	svc := NewReviewService(&stubReviewRepo{}, existingDoctor(1))

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), &entities.Review{DoctorID: 1, Rating: rating})
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeValidation, errors.TypeOf(err))
	}
}

func TestReviewServiceCreateRejectsLongComment(t *testing.T) {
	svc := NewReviewService(&stubReviewRepo{}, existingDoctor(1))

	_, err := svc.Create(context.Background(), &entities.Review{
		DoctorID: 1,
		Rating:   4,
		Comment:  strings.Repeat("a", entities.MaxCommentLength+1),
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.TypeOf(err))
}

func TestReviewServiceCreateUnknownDoctor(t *testing.T) {
	svc := NewReviewService(&stubReviewRepo{}, &stubDoctorRepo{})

	_, err := svc.Create(context.Background(), &entities.Review{DoctorID: 99, Rating: 3})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReviewServiceCreateSetsTimestamp(t *testing.T) {
	var captured *entities.Review
	reviewRepo := &stubReviewRepo{
		createAndRecalcFn: func(ctx context.Context, review *entities.Review) (float64, error) {
			captured = review
			return 3.0, nil
		},
	}
	svc := NewReviewService(reviewRepo, existingDoctor(1))

	_, err := svc.Create(context.Background(), &entities.Review{DoctorID: 1, Rating: 3})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.False(t, captured.CreatedAt.IsZero())
}
