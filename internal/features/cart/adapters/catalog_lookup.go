package adapters

import (
	"context"
	"fmt"
	"strings"

	"drherbs-api/internal/features/cart/domain"
	catalogports "drherbs-api/internal/features/catalog/ports"
)

// CatalogLookup implements ports.ProductLookup against the catalog feature's
// product provider.
type CatalogLookup struct {
	provider catalogports.ProductProvider
}

// NewCatalogLookup creates a new CatalogLookup.
func NewCatalogLookup(provider catalogports.ProductProvider) *CatalogLookup {
	return &CatalogLookup{
		provider: provider,
	}
}

// Lookup resolves a product id to an add-time snapshot, or nil when the
// product does not exist.
func (l *CatalogLookup) Lookup(ctx context.Context, productID string) (*domain.Snapshot, error) {
	product, err := l.provider.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product for cart: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	return &domain.Snapshot{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImageURL:  safeImageURL(product.ImageURL),
	}, nil
}

// safeImageURL drops inline data URIs from cart snapshots; they can be
// megabytes large and have no business living in session storage.
func safeImageURL(url string) string {
	if strings.HasPrefix(url, "data:") {
		return ""
	}
	return url
}
