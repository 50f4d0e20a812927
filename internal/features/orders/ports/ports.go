package ports

import (
	"context"

	cartdomain "drherbs-api/internal/features/cart/domain"
	"drherbs-api/internal/features/orders/domain"
)

// OrderService defines checkout and order administration.
type OrderService interface {
	// Checkout turns the session's cart into a pending order. Totals are
	// recomputed server-side; the cart is cleared only after the backend
	// accepts the order.
	Checkout(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.Order, error)
	// List returns all orders, newest first (admin).
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus moves an order to a new lifecycle state (admin).
	UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
}

// Submitter places a new order with the backend.
type Submitter interface {
	// Submit returns the stored order with its backend-assigned id
	// and creation date.
	Submit(ctx context.Context, order domain.Order) (*domain.Order, error)
}

// AdminRepository reads and mutates stored orders.
type AdminRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// UpdateOrderStatus returns nil, nil when the order does not exist.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
}

// CartAccess is the slice of the cart feature checkout needs. The cart
// feature's store satisfies it structurally.
type CartAccess interface {
	Load(ctx context.Context, sessionID string) (cartdomain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// CartNotifier broadcasts that a session's cart changed.
type CartNotifier interface {
	CartChanged(ctx context.Context, sessionID string)
}
