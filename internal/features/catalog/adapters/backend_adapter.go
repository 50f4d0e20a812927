package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"drherbs-api/internal/core/config"
	"drherbs-api/internal/core/httpclient"
	"drherbs-api/internal/core/money"
	"drherbs-api/internal/features/catalog/domain"
)

// BackendAdapter implements the ProductProvider interface against the
// upstream storefront backend's REST API.
type BackendAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the backend connection details.
	config config.BackendConfig
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(cfg config.BackendConfig) *BackendAdapter {
	return &BackendAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// productPayload is the backend wire representation of a product.
type productPayload struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Price            float64  `json:"price"`
	OriginalPrice    float64  `json:"original_price,omitempty"`
	Category         string   `json:"category"`
	ImageURL         string   `json:"image_url,omitempty"`
	Images           []string `json:"images,omitempty"`
	Stock            int      `json:"stock"`
	Featured         bool     `json:"featured"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewCount      int      `json:"review_count,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	Ingredients      string   `json:"ingredients,omitempty"`
	CreatedDate      string   `json:"created_date,omitempty"`
}

// ListProducts fetches the full product collection from the backend.
func (a *BackendAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := a.newRequest(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}

	var payloads []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, mapToDomain(p))
	}
	return products, nil
}

// GetProduct fetches a single product. A backend 404 maps to (nil, nil).
func (a *BackendAdapter) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	req, err := a.newRequest(ctx, http.MethodGet, "/api/products/"+id, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	product := mapToDomain(payload)
	return &product, nil
}

// CreateProduct stores a new product on the backend.
func (a *BackendAdapter) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	req, err := a.newRequest(ctx, http.MethodPost, "/api/products", mapToPayload(p))
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	created := mapToDomain(payload)
	return &created, nil
}

// UpdateProduct replaces a product on the backend. A backend 404 maps to (nil, nil).
func (a *BackendAdapter) UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	req, err := a.newRequest(ctx, http.MethodPut, "/api/products/"+id, mapToPayload(p))
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	updated := mapToDomain(payload)
	return &updated, nil
}

// DeleteProduct removes a product from the backend.
func (a *BackendAdapter) DeleteProduct(ctx context.Context, id string) error {
	req, err := a.newRequest(ctx, http.MethodDelete, "/api/products/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}
	return nil
}

// HealthCheck verifies that the backend API is reachable.
func (a *BackendAdapter) HealthCheck(ctx context.Context) error {
	req, err := a.newRequest(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// newRequest builds an authorized request against the backend API.
func (a *BackendAdapter) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.config.URL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.config.ServiceKey)
	return req, nil
}

// mapToDomain converts a raw backend product response into a domain Product entity.
func mapToDomain(p productPayload) domain.Product {
	return domain.Product{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            money.FromDollars(p.Price),
		OriginalPrice:    money.FromDollars(p.OriginalPrice),
		Category:         p.Category,
		ImageURL:         p.ImageURL,
		Images:           p.Images,
		Stock:            p.Stock,
		Featured:         p.Featured,
		Rating:           p.Rating,
		ReviewCount:      p.ReviewCount,
		Benefits:         p.Benefits,
		Ingredients:      p.Ingredients,
		CreatedAt:        parseBackendDate(p.CreatedDate),
	}
}

// mapToPayload converts a domain Product into the backend wire format.
func mapToPayload(p domain.Product) productPayload {
	return productPayload{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price.Dollars(),
		OriginalPrice:    p.OriginalPrice.Dollars(),
		Category:         p.Category,
		ImageURL:         p.ImageURL,
		Images:           p.Images,
		Stock:            p.Stock,
		Featured:         p.Featured,
		Rating:           p.Rating,
		ReviewCount:      p.ReviewCount,
		Benefits:         p.Benefits,
		Ingredients:      p.Ingredients,
	}
}

// parseBackendDate parses the backend's timestamp formats.
// Unparseable dates map to the zero time so they sort as oldest.
func parseBackendDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
