package service

import (
	"context"
	"errors"
	"fmt"

	"drherbs-api/internal/features/cart/domain"
	"drherbs-api/internal/features/cart/ports"
)

// ErrUnknownProduct is returned when the product to add does not exist in the catalog.
var ErrUnknownProduct = errors.New("unknown product")

// ErrInvalidQuantity is returned when a quantity below 1 is requested.
// Removing a line requires RemoveItem, never a zero quantity.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartServiceImpl implements ports.CartService. The engine functions in the
// domain package do the arithmetic; this service owns persistence timing and
// change notification.
type CartServiceImpl struct {
	store    ports.Store
	lookup   ports.ProductLookup
	notifier ports.Notifier
	shipping domain.ShippingPolicy
}

// NewCartService creates a new CartServiceImpl.
func NewCartService(store ports.Store, lookup ports.ProductLookup, notifier ports.Notifier, shipping domain.ShippingPolicy) *CartServiceImpl {
	return &CartServiceImpl{
		store:    store,
		lookup:   lookup,
		notifier: notifier,
		shipping: shipping,
	}
}

// Get returns the session's cart with computed totals.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (*domain.View, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	return s.view(cart), nil
}

// AddItem snapshots the product and merges it into the cart.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID, productID string, qty int) (*domain.View, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	snap, err := s.lookup.Lookup(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up product: %w", err)
	}
	if snap == nil {
		return nil, ErrUnknownProduct
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart = domain.AddItem(cart, *snap, qty)
	return s.persist(ctx, sessionID, cart)
}

// UpdateQuantity replaces the quantity of an existing line. A quantity below 1
// is rejected here; the engine would treat it as a no-op either way.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*domain.View, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart = domain.SetQuantity(cart, productID, qty)
	return s.persist(ctx, sessionID, cart)
}

// RemoveItem deletes a line. Removing an absent product is a no-op.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.View, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart = domain.RemoveItem(cart, productID)
	return s.persist(ctx, sessionID, cart)
}

// Clear empties the session's cart.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}

	s.notifier.CartChanged(ctx, sessionID)
	return nil
}

func (s *CartServiceImpl) persist(ctx context.Context, sessionID string, cart domain.Cart) (*domain.View, error) {
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	s.notifier.CartChanged(ctx, sessionID)
	return s.view(cart), nil
}

func (s *CartServiceImpl) view(cart domain.Cart) *domain.View {
	if cart == nil {
		cart = domain.Cart{}
	}
	return &domain.View{
		Items:  cart,
		Totals: domain.ComputeTotals(cart, s.shipping),
	}
}
