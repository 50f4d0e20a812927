package service

import (
	"context"
	"errors"
	"fmt"

	"drherbs-api/internal/features/catalog/domain"
	"drherbs-api/internal/features/catalog/ports"
)

// ErrProductNotFound is returned when the product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidProduct is returned when a product fails validation on create or update.
var ErrInvalidProduct = errors.New("invalid product")

// CatalogServiceImpl implements ports.CatalogService on top of a ProductProvider.
type CatalogServiceImpl struct {
	provider ports.ProductProvider
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(provider ports.ProductProvider) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		provider: provider,
	}
}

// List fetches the full collection from the provider and applies the
// filter/sort criteria locally.
func (s *CatalogServiceImpl) List(ctx context.Context, criteria domain.Criteria) ([]domain.Product, error) {
	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	return domain.Query(products, criteria), nil
}

// Get retrieves a single product by id.
func (s *CatalogServiceImpl) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.provider.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get product: %w", err)
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// Create validates and stores a new product.
func (s *CatalogServiceImpl) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	created, err := s.provider.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create product: %w", err)
	}

	return created, nil
}

// Update validates and replaces an existing product.
func (s *CatalogServiceImpl) Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	updated, err := s.provider.UpdateProduct(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update product: %w", err)
	}

	if updated == nil {
		return nil, ErrProductNotFound
	}

	return updated, nil
}

// Delete removes a product from the catalog.
func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.provider.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete product: %w", err)
	}
	return nil
}

func validateProduct(p domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidProduct)
	}
	return nil
}
