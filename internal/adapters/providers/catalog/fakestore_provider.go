package catalog

import (
	"context"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/providers"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/fakestore"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// FakestoreProvider resolves product details through the fakestore
// catalog API.
type FakestoreProvider struct {
	client *fakestore.Client
}

// NewFakestoreProvider creates a catalog provider backed by the
// fakestore client.
func NewFakestoreProvider(client *fakestore.Client) providers.ProductCatalogProvider {
	return &FakestoreProvider{client: client}
}

// GetProduct fetches one product and maps it to the domain shape.
func (p *FakestoreProvider) GetProduct(ctx context.Context, productID int64) (*entities.ProductDetail, error) {
	product, err := p.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to fetch product from catalog", err)
	}

	return &entities.ProductDetail{
		ID:          product.ID,
		Title:       product.Title,
		Price:       product.Price,
		Description: product.Description,
		Category:    product.Category,
		Image:       product.Image,
		Rating: entities.ProductRating{
			Rate:  product.Rating.Rate,
			Count: product.Rating.Count,
		},
	}, nil
}
