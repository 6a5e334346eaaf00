package providers

import (
	"context"

	"github.com/zatekoja/dermrate/internal/domain/entities"
)

// ProductCatalogProvider resolves product details from the external
// catalog. Any failure (network, non-success status, malformed payload)
// surfaces as an error; callers degrade to fallback values rather than
// failing the surrounding operation.
type ProductCatalogProvider interface {
	GetProduct(ctx context.Context, productID int64) (*entities.ProductDetail, error)
}
