package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/providers"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/internal/infrastructure/observability"
	"github.com/zatekoja/dermrate/pkg/errors"
)

// RecommendationService creates and resolves product recommendations.
// Recommendations are valid for a fixed window after creation; expired
// ones behave exactly like ones that never existed.
type RecommendationService struct {
	recRepo    repositories.RecommendationRepository
	doctorRepo repositories.DoctorRepository
	catalog    providers.ProductCatalogProvider
}

func NewRecommendationService(
	recRepo repositories.RecommendationRepository,
	doctorRepo repositories.DoctorRepository,
	catalog providers.ProductCatalogProvider,
) *RecommendationService {
	return &RecommendationService{
		recRepo:    recRepo,
		doctorRepo: doctorRepo,
		catalog:    catalog,
	}
}

// Create persists a recommendation issued by a doctor. Product ids are
// stored as given; they are resolved against the catalog only at read
// time.
func (s *RecommendationService) Create(ctx context.Context, doctorID int64, notes string, productIDs []int64) (*entities.Recommendation, error) {
	if len(productIDs) == 0 {
		return nil, errors.NewValidationError("at least one product is required")
	}
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &entities.Recommendation{
		Identifier: uuid.NewString(),
		DoctorID:   doctorID,
		Notes:      notes,
		CreatedAt:  now,
		ExpiresAt:  now.Add(entities.RecommendationValidity),
		ProductIDs: productIDs,
	}
	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByIdentifier resolves a shareable recommendation link. Expired
// recommendations are reported as not found, indistinguishable from
// unknown identifiers.
func (s *RecommendationService) GetByIdentifier(ctx context.Context, identifier string) (*entities.Recommendation, error) {
	rec, err := s.recRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if rec.Expired(time.Now().UTC()) {
		return nil, errors.NewNotFoundError("recommendation not found")
	}
	return rec, nil
}

// ResolveProducts looks up catalog details for the given product ids.
// Lookups that fail are logged and skipped, so the result may be shorter
// than the input.
func (s *RecommendationService) ResolveProducts(ctx context.Context, productIDs []int64) []entities.ProductDetail {
	details := make([]entities.ProductDetail, 0, len(productIDs))
	for _, id := range productIDs {
		detail, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Int64("product_id", id).
				Msg("failed to resolve product from catalog")
			continue
		}
		details = append(details, *detail)
	}
	return details
}
