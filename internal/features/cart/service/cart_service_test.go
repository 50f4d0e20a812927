package service

import (
	"context"
	"errors"
	"testing"

	"drherbs-api/internal/core/money"
	"drherbs-api/internal/features/cart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of ports.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	args := m.Called(ctx, sessionID, cart)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockLookup is a mock implementation of ports.ProductLookup
type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) Lookup(ctx context.Context, productID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

// MockNotifier is a mock implementation of ports.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) CartChanged(ctx context.Context, sessionID string) {
	m.Called(ctx, sessionID)
}

func newService(store *MockStore, lookup *MockLookup, notifier *MockNotifier) *CartServiceImpl {
	return NewCartService(store, lookup, notifier, domain.DefaultShippingPolicy())
}

const session = "sess-1"

func TestCartService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("ComputesTotals", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		cart := domain.Cart{{ProductID: "p1", UnitPrice: money.FromDollars(10), Quantity: 1}}
		store.On("Load", ctx, session).Return(cart, nil).Once()

		view, err := svc.Get(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, money.Cents(1000), view.Subtotal)
		assert.Equal(t, money.Cents(599), view.ShippingCost)
		assert.Equal(t, money.Cents(1599), view.Total)
		store.AssertExpectations(t)
	})

	t.Run("EmptySession", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		store.On("Load", ctx, session).Return(domain.Cart{}, nil).Once()

		view, err := svc.Get(ctx, session)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		store.AssertExpectations(t)
	})

	t.Run("StoreError", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		store.On("Load", ctx, session).Return(nil, errors.New("redis down")).Once()

		view, err := svc.Get(ctx, session)
		assert.Error(t, err)
		assert.Nil(t, view)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	snap := &domain.Snapshot{ProductID: "p1", Name: "Chamomile Tea", UnitPrice: money.FromDollars(10)}

	t.Run("Success", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		lookup.On("Lookup", ctx, "p1").Return(snap, nil).Once()
		store.On("Load", ctx, session).Return(domain.Cart{}, nil).Once()
		store.On("Save", ctx, session, mock.AnythingOfType("domain.Cart")).Return(nil).Once()
		notifier.On("CartChanged", ctx, session).Return().Once()

		view, err := svc.AddItem(ctx, session, "p1", 2)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.Equal(t, money.Cents(2000), view.Subtotal)

		store.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("MergesExistingLine", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		existing := domain.Cart{{ProductID: "p1", Name: "Chamomile Tea", UnitPrice: money.FromDollars(10), Quantity: 1}}
		lookup.On("Lookup", ctx, "p1").Return(snap, nil).Once()
		store.On("Load", ctx, session).Return(existing, nil).Once()
		store.On("Save", ctx, session, mock.AnythingOfType("domain.Cart")).Return(nil).Once()
		notifier.On("CartChanged", ctx, session).Return().Once()

		view, err := svc.AddItem(ctx, session, "p1", 3)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 4, view.Items[0].Quantity)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		lookup.On("Lookup", ctx, "missing").Return(nil, nil).Once()

		_, err := svc.AddItem(ctx, session, "missing", 1)
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		_, err := svc.AddItem(ctx, session, "p1", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("SaveFailure", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		lookup.On("Lookup", ctx, "p1").Return(snap, nil).Once()
		store.On("Load", ctx, session).Return(domain.Cart{}, nil).Once()
		store.On("Save", ctx, session, mock.AnythingOfType("domain.Cart")).Return(errors.New("redis down")).Once()

		_, err := svc.AddItem(ctx, session, "p1", 1)
		assert.Error(t, err)
		notifier.AssertNotCalled(t, "CartChanged", mock.Anything, mock.Anything)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		cart := domain.Cart{{ProductID: "p1", UnitPrice: money.FromDollars(10), Quantity: 1}}
		store.On("Load", ctx, session).Return(cart, nil).Once()
		store.On("Save", ctx, session, mock.AnythingOfType("domain.Cart")).Return(nil).Once()
		notifier.On("CartChanged", ctx, session).Return().Once()

		view, err := svc.UpdateQuantity(ctx, session, "p1", 5)
		require.NoError(t, err)
		assert.Equal(t, 5, view.Items[0].Quantity)
	})

	t.Run("ZeroRejected", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		_, err := svc.UpdateQuantity(ctx, session, "p1", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownProductIsNoOp", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		cart := domain.Cart{{ProductID: "p1", UnitPrice: money.FromDollars(10), Quantity: 2}}
		store.On("Load", ctx, session).Return(cart, nil).Once()
		store.On("Save", ctx, session, mock.AnythingOfType("domain.Cart")).Return(nil).Once()
		notifier.On("CartChanged", ctx, session).Return().Once()

		view, err := svc.UpdateQuantity(ctx, session, "other", 9)
		require.NoError(t, err)
		assert.Equal(t, 2, view.Items[0].Quantity)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()

	store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
	svc := newService(store, lookup, notifier)

	cart := domain.Cart{
		{ProductID: "p1", UnitPrice: money.FromDollars(10), Quantity: 1},
		{ProductID: "p2", UnitPrice: money.FromDollars(20), Quantity: 1},
	}
	store.On("Load", ctx, session).Return(cart, nil).Once()
	store.On("Save", ctx, session, mock.AnythingOfType("domain.Cart")).Return(nil).Once()
	notifier.On("CartChanged", ctx, session).Return().Once()

	view, err := svc.RemoveItem(ctx, session, "p1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p2", view.Items[0].ProductID)
	notifier.AssertExpectations(t)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		store.On("Clear", ctx, session).Return(nil).Once()
		notifier.On("CartChanged", ctx, session).Return().Once()

		require.NoError(t, svc.Clear(ctx, session))
		store.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("StoreError", func(t *testing.T) {
		store, lookup, notifier := new(MockStore), new(MockLookup), new(MockNotifier)
		svc := newService(store, lookup, notifier)

		store.On("Clear", ctx, session).Return(errors.New("redis down")).Once()

		assert.Error(t, svc.Clear(ctx, session))
		notifier.AssertNotCalled(t, "CartChanged", mock.Anything, mock.Anything)
	})
}
