package ports

import (
	"context"

	"drherbs-api/internal/features/catalog/domain"
)

// CatalogService defines the primary port for catalog operations.
type CatalogService interface {
	// List returns the filtered, ordered product listing for the criteria.
	List(ctx context.Context, criteria domain.Criteria) ([]domain.Product, error)
	// Get returns a single product by id.
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Create adds a new product to the catalog (admin only).
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	// Update replaces a product's fields (admin only).
	Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	// Delete removes a product from the catalog (admin only).
	Delete(ctx context.Context, id string) error
}

// ProductProvider defines the secondary port for product persistence,
// implemented against the upstream storefront backend.
type ProductProvider interface {
	// ListProducts returns the full product collection.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProduct returns a product by id, or nil when it does not exist.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	// CreateProduct stores a new product and returns it with its assigned id.
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	// UpdateProduct replaces a product, or returns nil when it does not exist.
	UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	// DeleteProduct removes a product by id.
	DeleteProduct(ctx context.Context, id string) error
}
