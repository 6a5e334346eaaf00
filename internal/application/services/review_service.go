package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/internal/infrastructure/observability"
	"github.com/zatekoja/dermrate/pkg/errors"
)

// ReviewService handles review submission and the doctor's rolling
// average rating that every accepted review updates.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	doctorRepo repositories.DoctorRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, doctorRepo repositories.DoctorRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, doctorRepo: doctorRepo}
}

// Create validates and persists a review. The insert and the doctor's
// average-rating recalculation happen in one transaction, so the
// returned average already reflects this review even under concurrent
// submissions for the same doctor.
func (s *ReviewService) Create(ctx context.Context, review *entities.Review) (float64, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return 0, errors.NewValidationError("rating must be between 1 and 5")
	}
	if len(review.Comment) > entities.MaxCommentLength {
		return 0, errors.NewValidationError(
			fmt.Sprintf("comment must be at most %d characters", entities.MaxCommentLength))
	}

	if _, err := s.doctorRepo.GetByID(ctx, review.DoctorID); err != nil {
		return 0, err
	}

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	average, err := s.reviewRepo.CreateAndRecalculate(ctx, review)
	if err != nil {
		return 0, err
	}

	observability.LoggerFromContext(ctx).Info().
		Int64("doctor_id", review.DoctorID).
		Int("rating", review.Rating).
		Float64("average_rating", average).
		Msg("review accepted")

	return average, nil
}

// ListByDoctor returns a doctor's reviews, newest first.
func (s *ReviewService) ListByDoctor(ctx context.Context, doctorID int64) ([]*entities.Review, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByDoctor(ctx, doctorID)
}
