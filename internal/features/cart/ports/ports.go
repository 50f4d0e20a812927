package ports

import (
	"context"

	"drherbs-api/internal/features/cart/domain"
)

// CartService defines the primary port for cart operations.
type CartService interface {
	// Get returns the cart for the session with computed totals.
	Get(ctx context.Context, sessionID string) (*domain.View, error)
	// AddItem puts qty units of a product in the cart, merging with any
	// existing line for the same product.
	AddItem(ctx context.Context, sessionID, productID string, qty int) (*domain.View, error)
	// UpdateQuantity replaces the quantity of an existing line.
	UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*domain.View, error)
	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, sessionID, productID string) (*domain.View, error)
	// Clear empties the cart.
	Clear(ctx context.Context, sessionID string) error
}

// Store defines the secondary port persisting cart snapshots per session.
type Store interface {
	// Load returns the cart for a session; an unknown session yields an empty cart.
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	// Save persists the cart snapshot for a session.
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	// Clear removes the session's cart entirely.
	Clear(ctx context.Context, sessionID string) error
}

// Notifier broadcasts cart-change events so independent observers
// (e.g., a cart badge counter) can refresh.
type Notifier interface {
	CartChanged(ctx context.Context, sessionID string)
}

// ProductLookup resolves a product id to an add-time snapshot.
// Returns nil when the product does not exist.
type ProductLookup interface {
	Lookup(ctx context.Context, productID string) (*domain.Snapshot, error)
}
