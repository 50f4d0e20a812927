package domain

import (
	"drherbs-api/internal/core/money"
)

// Snapshot is the denormalized product data captured when a product is added
// to a cart. Later price or name changes on the product do not touch
// existing cart lines.
type Snapshot struct {
	ProductID string
	Name      string
	UnitPrice money.Cents
	ImageURL  string
}

// Line is one product entry in a shopping cart.
type Line struct {
	// ProductID references the catalog product this line was created from.
	ProductID string `json:"product_id"`
	// Name is the product name at add-time.
	Name string `json:"name"`
	// UnitPrice is the product price at add-time.
	UnitPrice money.Cents `json:"price"`
	// ImageURL is the product image at add-time.
	ImageURL string `json:"image_url,omitempty"`
	// Quantity is the number of units, always at least 1.
	Quantity int `json:"quantity"`
}

// Cart is an ordered list of lines, at most one per product id.
type Cart []Line

// Totals holds the monetary summary of a cart.
type Totals struct {
	// Subtotal is the sum of price times quantity over all lines.
	Subtotal money.Cents `json:"subtotal"`
	// ShippingCost is zero above the free-shipping threshold, else the flat rate.
	ShippingCost money.Cents `json:"shipping_cost"`
	// Total is subtotal plus shipping.
	Total money.Cents `json:"total"`
}

// ShippingPolicy holds the shipping pricing rule applied at checkout.
type ShippingPolicy struct {
	// FreeShippingThreshold is the subtotal that must be strictly exceeded
	// for shipping to be free.
	FreeShippingThreshold money.Cents
	// FlatRate is charged whenever the threshold is not exceeded.
	FlatRate money.Cents
}

// DefaultShippingPolicy returns the store's current shipping rule:
// free above $50.00, otherwise a $5.99 flat rate.
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeShippingThreshold: 5000,
		FlatRate:              599,
	}
}

// View combines the cart lines with their computed totals for presentation.
type View struct {
	Items Cart `json:"items"`
	Totals
}

// AddItem returns a new cart with qty units of the snapshotted product.
// If a line for the product already exists its quantity is incremented,
// otherwise a new line is appended. qty is assumed positive.
func AddItem(cart Cart, snap Snapshot, qty int) Cart {
	next := cart.clone()
	for i := range next {
		if next[i].ProductID == snap.ProductID {
			next[i].Quantity += qty
			return next
		}
	}

	return append(next, Line{
		ProductID: snap.ProductID,
		Name:      snap.Name,
		UnitPrice: snap.UnitPrice,
		ImageURL:  snap.ImageURL,
		Quantity:  qty,
	})
}

// SetQuantity returns a new cart with the matching line's quantity replaced.
// A qty below 1 leaves the cart unchanged: decrementing never deletes a line,
// callers must use RemoveItem for that. An unknown product id is a no-op.
func SetQuantity(cart Cart, productID string, qty int) Cart {
	next := cart.clone()
	if qty < 1 {
		return next
	}

	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = qty
			break
		}
	}
	return next
}

// RemoveItem returns a new cart without the matching line.
// Removing an absent product id is a no-op, not an error.
func RemoveItem(cart Cart, productID string) Cart {
	next := make(Cart, 0, len(cart))
	for _, line := range cart {
		if line.ProductID != productID {
			next = append(next, line)
		}
	}
	return next
}

// ComputeTotals derives the monetary summary of a cart under the given
// shipping policy. Shipping is free only when the subtotal strictly exceeds
// the threshold; a subtotal equal to the threshold still pays the flat rate.
func ComputeTotals(cart Cart, policy ShippingPolicy) Totals {
	var subtotal money.Cents
	for _, line := range cart {
		subtotal += line.UnitPrice.Mul(line.Quantity)
	}

	var shipping money.Cents
	if subtotal <= policy.FreeShippingThreshold {
		shipping = policy.FlatRate
	}

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
	}
}

// Units returns the total number of units across all lines, e.g. for the
// cart badge counter.
func (c Cart) Units() int {
	total := 0
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

func (c Cart) clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}
