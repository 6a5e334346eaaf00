package catalog

import (
	"context"
	"fmt"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/providers"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// MockProvider serves canned product details for local development and
// tests.
type MockProvider struct {
	// Products indexes canned details by product id. Ids absent from the
	// map resolve as external failures, like an unreachable catalog.
	Products map[int64]entities.ProductDetail
}

// NewMockProvider creates a mock catalog provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Products: map[int64]entities.ProductDetail{
			1: {ID: 1, Title: "Daily Moisturizer SPF 30", Price: 18.50, Category: "skincare"},
			2: {ID: 2, Title: "Salicylic Acid Cleanser", Price: 11.99, Category: "skincare"},
			3: {ID: 3, Title: "Ceramide Repair Cream", Price: 24.00, Category: "skincare"},
		},
	}
}

var _ providers.ProductCatalogProvider = (*MockProvider)(nil)

// GetProduct returns the canned detail for the id.
func (m *MockProvider) GetProduct(ctx context.Context, productID int64) (*entities.ProductDetail, error) {
	if detail, ok := m.Products[productID]; ok {
		return &detail, nil
	}
	return nil, apperrors.NewExternalError(
		fmt.Sprintf("product %d not available in mock catalog", productID), nil)
}
