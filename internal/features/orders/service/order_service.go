package service

import (
	"context"
	"errors"
	"fmt"

	"drherbs-api/internal/core/logger"
	cartdomain "drherbs-api/internal/features/cart/domain"
	"drherbs-api/internal/features/orders/domain"
	"drherbs-api/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidForm is returned when the checkout form fails validation.
var ErrInvalidForm = errors.New("invalid checkout form")

// ErrOrderNotFound is returned when an admin targets a non-existent order.
var ErrOrderNotFound = errors.New("order not found")

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	submitter ports.Submitter
	repo      ports.AdminRepository
	cart      ports.CartAccess
	notifier  ports.CartNotifier
	shipping  cartdomain.ShippingPolicy
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(submitter ports.Submitter, repo ports.AdminRepository, cart ports.CartAccess, notifier ports.CartNotifier, shipping cartdomain.ShippingPolicy) *OrderServiceImpl {
	return &OrderServiceImpl{
		submitter: submitter,
		repo:      repo,
		cart:      cart,
		notifier:  notifier,
		shipping:  shipping,
	}
}

// Checkout places a cash-on-delivery order from the session's cart.
// The cart survives any failure; it is cleared only once the backend
// has accepted the order.
func (s *OrderServiceImpl) Checkout(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.Order, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidForm, err)
	}

	cart, err := s.cart.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	totals := cartdomain.ComputeTotals(cart, s.shipping)
	order := domain.NewOrder(form, cart, totals)

	placed, err := s.submitter.Submit(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("service: failed to submit order: %w", err)
	}

	// The order exists at this point; a failed cart clear must not
	// surface as a checkout failure.
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		logger.Get().Warn("Failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.String("order_id", placed.ID),
			zap.Error(err),
		)
	} else {
		s.notifier.CartChanged(ctx, sessionID)
	}

	return placed, nil
}

// List returns all orders for the admin panel.
func (s *OrderServiceImpl) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new lifecycle state.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	updated, err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update order status: %w", err)
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	return updated, nil
}
