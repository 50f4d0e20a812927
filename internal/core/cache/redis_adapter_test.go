package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "cart:abc", []byte(`[{"product_id":"p1"}]`), time.Hour)
	require.NoError(t, err)

	val, err := adapter.Get(ctx, "cart:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"product_id":"p1"}]`), val)
}

func TestRedisAdapter_GetMissing(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "cart:missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not found")
}

func TestRedisAdapter_SetTTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "cart:ttl", []byte("x"), time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := adapter.Get(ctx, "cart:ttl")
	assert.Error(t, err)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "cart:del", []byte("x"), 0))
	require.NoError(t, adapter.Delete(ctx, "cart:del"))

	_, err := adapter.Get(ctx, "cart:del")
	assert.Error(t, err)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, mr := newTestAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))

	mr.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestNewRedisAdapter_BadURL(t *testing.T) {
	_, err := NewRedisAdapter("not-a-redis-url")
	assert.Error(t, err)
}
