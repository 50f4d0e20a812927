package domain

import (
	"fmt"
	"strings"
	"time"

	"drherbs-api/internal/core/money"
	cartdomain "drherbs-api/internal/features/cart/domain"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a status string received over the wire.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid order status: %q", s)
	}
}

// PaymentCashOnDelivery is the only payment method the store accepts.
const PaymentCashOnDelivery = "cod"

// Order is a placed order as stored by the backend.
type Order struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	ShippingAddress string            `json:"shipping_address"`
	City            string            `json:"city"`
	PostalCode      string            `json:"postal_code"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes,omitempty"`
	AdCode          string            `json:"ad_code,omitempty"`
	Items           []cartdomain.Line `json:"items"`
	Subtotal        money.Cents       `json:"subtotal"`
	ShippingCost    money.Cents       `json:"shipping_cost"`
	Total           money.Cents       `json:"total"`
	Status          Status            `json:"status"`
	CreatedAt       time.Time         `json:"created_date"`
}

// CheckoutForm is what the shopper submits at checkout. Cart contents and
// totals are never taken from the client; the service reads the cart itself.
type CheckoutForm struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	PostalCode      string `json:"postal_code"`
	Notes           string `json:"notes"`
	AdCode          string `json:"ad_code"`
}

// Validate checks the required checkout fields.
func (f CheckoutForm) Validate() error {
	var missing []string
	if strings.TrimSpace(f.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(f.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}
	if strings.TrimSpace(f.ShippingAddress) == "" {
		missing = append(missing, "shipping_address")
	}
	if strings.TrimSpace(f.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if f.CustomerEmail != "" && !strings.Contains(f.CustomerEmail, "@") {
		return fmt.Errorf("invalid email address: %q", f.CustomerEmail)
	}
	return nil
}

// NewOrder assembles a pending cash-on-delivery order from a checkout form
// and the server-side cart state.
func NewOrder(form CheckoutForm, items cartdomain.Cart, totals cartdomain.Totals) Order {
	return Order{
		CustomerName:    strings.TrimSpace(form.CustomerName),
		CustomerEmail:   strings.TrimSpace(form.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(form.CustomerPhone),
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		City:            strings.TrimSpace(form.City),
		PostalCode:      strings.TrimSpace(form.PostalCode),
		PaymentMethod:   PaymentCashOnDelivery,
		Notes:           strings.TrimSpace(form.Notes),
		AdCode:          strings.TrimSpace(form.AdCode),
		Items:           items,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.ShippingCost,
		Total:           totals.Total,
		Status:          StatusPending,
	}
}
