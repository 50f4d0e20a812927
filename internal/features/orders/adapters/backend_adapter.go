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
	cartdomain "drherbs-api/internal/features/cart/domain"
	"drherbs-api/internal/features/orders/domain"
)

// BackendAdapter implements the Submitter and AdminRepository interfaces
// against the upstream storefront backend's REST API.
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

// orderPayload is the backend wire representation of an order.
type orderPayload struct {
	ID              string        `json:"id,omitempty"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email,omitempty"`
	CustomerPhone   string        `json:"customer_phone"`
	ShippingAddress string        `json:"shipping_address"`
	City            string        `json:"city"`
	PostalCode      string        `json:"postal_code,omitempty"`
	PaymentMethod   string        `json:"payment_method"`
	Notes           string        `json:"notes,omitempty"`
	AdCode          string        `json:"ad_code,omitempty"`
	Items           []linePayload `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	ShippingCost    float64       `json:"shipping_cost"`
	Total           float64       `json:"total"`
	Status          string        `json:"status,omitempty"`
	CreatedDate     string        `json:"created_date,omitempty"`
}

// linePayload is the backend wire representation of an order line.
type linePayload struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// Submit places a new order with the backend.
func (a *BackendAdapter) Submit(ctx context.Context, order domain.Order) (*domain.Order, error) {
	req, err := a.newRequest(ctx, http.MethodPost, "/api/orders", mapToPayload(order))
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

	var payload orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	placed := mapToDomain(payload)
	return &placed, nil
}

// ListOrders fetches every stored order from the backend's admin endpoint.
func (a *BackendAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	req, err := a.newRequest(ctx, http.MethodGet, "/api/orders/admin", nil)
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

	var payloads []orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	orders := make([]domain.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, mapToDomain(p))
	}
	return orders, nil
}

// UpdateOrderStatus changes an order's status. A backend 404 maps to (nil, nil).
func (a *BackendAdapter) UpdateOrderStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	req, err := a.newRequest(ctx, http.MethodPut, "/api/orders/admin/"+orderID+"/status", statusPayload{Status: string(status)})
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

	var payload orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	updated := mapToDomain(payload)
	return &updated, nil
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

// mapToDomain converts a raw backend order response into a domain Order entity.
func mapToDomain(p orderPayload) domain.Order {
	items := make([]cartdomain.Line, 0, len(p.Items))
	for _, l := range p.Items {
		items = append(items, cartdomain.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: money.FromDollars(l.Price),
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
		})
	}

	return domain.Order{
		ID:              p.ID,
		CustomerName:    p.CustomerName,
		CustomerEmail:   p.CustomerEmail,
		CustomerPhone:   p.CustomerPhone,
		ShippingAddress: p.ShippingAddress,
		City:            p.City,
		PostalCode:      p.PostalCode,
		PaymentMethod:   p.PaymentMethod,
		Notes:           p.Notes,
		AdCode:          p.AdCode,
		Items:           items,
		Subtotal:        money.FromDollars(p.Subtotal),
		ShippingCost:    money.FromDollars(p.ShippingCost),
		Total:           money.FromDollars(p.Total),
		Status:          domain.Status(p.Status),
		CreatedAt:       parseBackendDate(p.CreatedDate),
	}
}

// mapToPayload converts a domain Order into the backend wire format.
func mapToPayload(o domain.Order) orderPayload {
	items := make([]linePayload, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, linePayload{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.UnitPrice.Dollars(),
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
		})
	}

	return orderPayload{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.ShippingAddress,
		City:            o.City,
		PostalCode:      o.PostalCode,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		AdCode:          o.AdCode,
		Items:           items,
		Subtotal:        o.Subtotal.Dollars(),
		ShippingCost:    o.ShippingCost.Dollars(),
		Total:           o.Total.Dollars(),
		Status:          string(o.Status),
	}
}

// parseBackendDate parses the backend's timestamp formats.
// Unparseable dates map to the zero time.
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
