package repositories

import (
	"context"

	"github.com/zatekoja/dermrate/internal/domain/entities"
)

// ReviewRepository defines persistence operations for reviews and the
// read-side aggregations computed over them.
type ReviewRepository interface {
	// CreateAndRecalculate inserts the review and refreshes the owning
	// doctor's average_rating in a single transaction, returning the new
	// average. Concurrent calls for the same doctor serialize on the
	// doctors row.
	CreateAndRecalculate(ctx context.Context, review *entities.Review) (float64, error)

	ListByDoctor(ctx context.Context, doctorID int64) ([]*entities.Review, error)
	CountByDoctor(ctx context.Context, doctorID int64) (int, error)

	// MonthlyTrends groups the doctor's reviews by calendar year-month,
	// ordered ascending. Months with no reviews are omitted.
	MonthlyTrends(ctx context.Context, doctorID int64) ([]entities.RatingTrendPoint, error)

	// CommentsByDoctor returns the non-empty comments of the doctor's
	// reviews, for sentiment analysis.
	CommentsByDoctor(ctx context.Context, doctorID int64) ([]string, error)
}
