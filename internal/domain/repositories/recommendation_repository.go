package repositories

import (
	"context"

	"github.com/zatekoja/dermrate/internal/domain/entities"
)

// RecommendationRepository defines persistence operations for
// recommendations and their product links.
type RecommendationRepository interface {
	// Create inserts the recommendation and one link row per product id
	// atomically; either all rows become visible or none.
	Create(ctx context.Context, rec *entities.Recommendation) error

	// GetByIdentifier loads a recommendation with its product ids by
	// public identifier, regardless of expiry. Expiry filtering is the
	// service's concern.
	GetByIdentifier(ctx context.Context, identifier string) (*entities.Recommendation, error)

	// TopProducts counts link occurrences per product across all of the
	// doctor's recommendations (expired included), ordered by count
	// descending with product id ascending as tie-break.
	TopProducts(ctx context.Context, doctorID int64, limit int) ([]entities.ProductCount, error)

	CountByDoctor(ctx context.Context, doctorID int64) (int, error)
	CountLinksByDoctor(ctx context.Context, doctorID int64) (int, error)
}
