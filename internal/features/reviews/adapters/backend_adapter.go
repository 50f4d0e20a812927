package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"drherbs-api/internal/core/config"
	"drherbs-api/internal/core/httpclient"
	"drherbs-api/internal/features/reviews/domain"
)

// BackendAdapter implements the Provider interface against the upstream
// storefront backend's REST API.
type BackendAdapter struct {
	client *http.Client
	config config.BackendConfig
}

// NewBackendAdapter creates a new instance of BackendAdapter.
func NewBackendAdapter(cfg config.BackendConfig) *BackendAdapter {
	return &BackendAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// reviewPayload is the backend wire representation of a review.
type reviewPayload struct {
	ID           string `json:"id,omitempty"`
	ProductID    string `json:"product_id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedDate  string `json:"created_date,omitempty"`
}

// ListReviews fetches a product's reviews from the backend.
func (a *BackendAdapter) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	path := "/api/reviews?product_id=" + url.QueryEscape(productID)
	req, err := a.newRequest(ctx, http.MethodGet, path, nil)
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

	var payloads []reviewPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	reviews := make([]domain.Review, 0, len(payloads))
	for _, p := range payloads {
		reviews = append(reviews, mapToDomain(p))
	}
	return reviews, nil
}

// CreateReview stores a new review on the backend.
func (a *BackendAdapter) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	req, err := a.newRequest(ctx, http.MethodPost, "/api/reviews", reviewPayload{
		ProductID:    review.ProductID,
		CustomerName: review.CustomerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
	})
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

	var payload reviewPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	created := mapToDomain(payload)
	return &created, nil
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

// mapToDomain converts a raw backend review response into a domain Review entity.
func mapToDomain(p reviewPayload) domain.Review {
	return domain.Review{
		ID:           p.ID,
		ProductID:    p.ProductID,
		CustomerName: p.CustomerName,
		Rating:       p.Rating,
		Comment:      p.Comment,
		CreatedAt:    parseBackendDate(p.CreatedDate),
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
