package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/providers"
	"github.com/zatekoja/dermrate/internal/infrastructure/observability"
)

// CachedProvider wraps a ProductCatalogProvider with Redis caching.
// Cache failures are never surfaced; they degrade to a direct fetch.
type CachedProvider struct {
	inner      providers.ProductCatalogProvider
	cache      providers.CacheProvider
	ttlSeconds int
	metrics    *observability.Metrics
}

// NewCachedProvider creates a caching decorator around a catalog
// provider.
func NewCachedProvider(inner providers.ProductCatalogProvider, cache providers.CacheProvider, ttlSeconds int, metrics *observability.Metrics) providers.ProductCatalogProvider {
	if ttlSeconds <= 0 {
		ttlSeconds = 3600
	}
	return &CachedProvider{
		inner:      inner,
		cache:      cache,
		ttlSeconds: ttlSeconds,
		metrics:    metrics,
	}
}

func productCacheKey(productID int64) string {
	return fmt.Sprintf("catalog:product:%d", productID)
}

// GetProduct returns a cached product detail when available and falls
// back to the wrapped provider otherwise.
func (p *CachedProvider) GetProduct(ctx context.Context, productID int64) (*entities.ProductDetail, error) {
	cacheKey := productCacheKey(productID)

	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil {
			var detail entities.ProductDetail
			if err := json.Unmarshal(cached, &detail); err == nil {
				observability.RecordCacheHit(ctx, p.metrics, cacheKey)
				return &detail, nil
			}
		}
		observability.RecordCacheMiss(ctx, p.metrics, cacheKey)
	}

	detail, err := p.inner.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if payload, err := json.Marshal(detail); err == nil {
			logger := observability.LoggerFromContext(ctx)
			if err := p.cache.Set(ctx, cacheKey, payload, p.ttlSeconds); err != nil {
				logger.Warn().Err(err).Int64("product_id", productID).Msg("failed to cache product detail")
			}
		}
	}

	return detail, nil
}
