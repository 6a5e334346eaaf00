package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/providers"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/internal/infrastructure/observability"
)

// DefaultTopProductsLimit bounds the product ranking when the caller
// does not ask for a specific size.
const DefaultTopProductsLimit = 5

// AnalyticsService aggregates a doctor's reviews and recommendations
// into the analytics report served to the doctor dashboard.
type AnalyticsService struct {
	doctorRepo repositories.DoctorRepository
	reviewRepo repositories.ReviewRepository
	recRepo    repositories.RecommendationRepository
	catalog    providers.ProductCatalogProvider
	metrics    *observability.Metrics
}

func NewAnalyticsService(
	doctorRepo repositories.DoctorRepository,
	reviewRepo repositories.ReviewRepository,
	recRepo repositories.RecommendationRepository,
	catalog providers.ProductCatalogProvider,
	metrics *observability.Metrics,
) *AnalyticsService {
	return &AnalyticsService{
		doctorRepo: doctorRepo,
		reviewRepo: reviewRepo,
		recRepo:    recRepo,
		catalog:    catalog,
		metrics:    metrics,
	}
}

// MonthlyTrends returns per-month average rating and volume for the
// doctor, oldest month first. Months without reviews do not appear.
func (s *AnalyticsService) MonthlyTrends(ctx context.Context, doctorID int64) ([]entities.RatingTrendPoint, error) {
	return s.reviewRepo.MonthlyTrends(ctx, doctorID)
}

// TopProducts ranks the products the doctor recommends most often and
// resolves their titles against the catalog. A failed catalog lookup
// degrades that entry to a placeholder title instead of failing the
// whole ranking.
func (s *AnalyticsService) TopProducts(ctx context.Context, doctorID int64, limit int) ([]entities.RecommendedProduct, error) {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	counts, err := s.recRepo.TopProducts(ctx, doctorID, limit)
	if err != nil {
		return nil, err
	}

	ranked := make([]entities.RecommendedProduct, 0, len(counts))
	for _, count := range counts {
		title := fmt.Sprintf("Product ID %d", count.ProductID)
		detail, err := s.catalog.GetProduct(ctx, count.ProductID)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Int64("product_id", count.ProductID).
				Msg("catalog lookup failed, using placeholder title")
			observability.RecordCatalogFallback(ctx, s.metrics, count.ProductID)
		} else {
			title = detail.Title
		}
		ranked = append(ranked, entities.RecommendedProduct{
			ProductID:           count.ProductID,
			ProductTitle:        title,
			RecommendationCount: count.Count,
		})
	}
	return ranked, nil
}

// SentimentBreakdown classifies every review comment for the doctor and
// tallies the classes. Reviews without a comment are not analyzed.
func (s *AnalyticsService) SentimentBreakdown(ctx context.Context, doctorID int64) (*entities.SentimentBreakdown, error) {
	comments, err := s.reviewRepo.CommentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	breakdown := &entities.SentimentBreakdown{}
	for _, comment := range comments {
		// Blank-after-trim comments carry no signal and do not count
		// toward the analyzed total.
		if strings.TrimSpace(comment) == "" {
			continue
		}
		switch ClassifySentiment(comment) {
		case SentimentPositive:
			breakdown.PositiveReviews++
		case SentimentNegative:
			breakdown.NegativeReviews++
		default:
			breakdown.NeutralReviews++
		}
	}

	breakdown.TotalAnalyzed = breakdown.PositiveReviews + breakdown.NeutralReviews + breakdown.NegativeReviews
	if breakdown.TotalAnalyzed > 0 {
		total := float64(breakdown.TotalAnalyzed)
		breakdown.PositivePercentage = roundTwo(float64(breakdown.PositiveReviews) / total * 100)
		breakdown.NeutralPercentage = roundTwo(float64(breakdown.NeutralReviews) / total * 100)
		breakdown.NegativePercentage = roundTwo(float64(breakdown.NegativeReviews) / total * 100)
	}
	return breakdown, nil
}

// BuildAnalytics assembles the full report for a doctor. Each section is
// computed independently; the report is a point-in-time snapshot, not a
// transactionally consistent view.
func (s *AnalyticsService) BuildAnalytics(ctx context.Context, doctorID int64) (*entities.DoctorAnalytics, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	totalReviews, err := s.reviewRepo.CountByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	totalRecommendations, err := s.recRepo.CountByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.recRepo.CountLinksByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	trends, err := s.MonthlyTrends(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.TopProducts(ctx, doctorID, DefaultTopProductsLimit)
	if err != nil {
		return nil, err
	}
	sentiment, err := s.SentimentBreakdown(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return &entities.DoctorAnalytics{
		OverallAverageRating:     doctor.AverageRating,
		TotalReviews:             totalReviews,
		TotalRecommendationsMade: totalRecommendations,
		TotalProductsRecommended: totalProducts,
		RatingTrends:             trends,
		TopRecommendedProducts:   topProducts,
		ReviewSentimentBreakdown: *sentiment,
	}, nil
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
