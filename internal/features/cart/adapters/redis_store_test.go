package adapters

import (
	"context"
	"testing"
	"time"

	"drherbs-api/internal/core/cache"
	"drherbs-api/internal/core/money"
	"drherbs-api/internal/features/cart/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisStore(c, time.Hour), mr
}

func TestRedisStore_LoadMissingSession(t *testing.T) {
	store, _ := setupStore(t)

	cart, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	cart := domain.Cart{
		{ProductID: "p1", Name: "Chamomile Tea", UnitPrice: money.FromDollars(12.50), Quantity: 2},
	}

	require.NoError(t, store.Save(ctx, "sess-1", cart))
	assert.True(t, mr.Exists("cart:sess-1"))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, cart, loaded)
}

func TestRedisStore_SaveSetsTTL(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, store.Save(context.Background(), "sess-1", domain.Cart{}))
	assert.Equal(t, time.Hour, mr.TTL("cart:sess-1"))
}

func TestRedisStore_Clear(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", domain.Cart{{ProductID: "p1", Quantity: 1}}))
	require.NoError(t, store.Clear(ctx, "sess-1"))
	assert.False(t, mr.Exists("cart:sess-1"))

	cart, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestRedisStore_LoadCorruptPayload(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, mr.Set("cart:sess-1", "not json"))

	_, err := store.Load(context.Background(), "sess-1")
	assert.Error(t, err)
}
