package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drherbs-api/internal/core/cache"
	"drherbs-api/internal/features/cart/domain"
)

const cartKeyPrefix = "cart:"

// RedisStore implements ports.Store using the cache adaptation.
// Each session's cart is stored as a JSON document under cart:<session-id>
// with a sliding TTL, taking over the role the browser's local storage
// played for anonymous shoppers.
type RedisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisStore creates a new RedisStore with the given session TTL.
func NewRedisStore(c cache.Cache, ttl time.Duration) *RedisStore {
	return &RedisStore{
		cache: c,
		ttl:   ttl,
	}
}

// Load retrieves the cart for a session. An unknown session yields an empty cart.
func (r *RedisStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	key := cartKeyPrefix + sessionID

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		// Check if the error is due to key not found
		if err.Error() == fmt.Sprintf("key not found: %s", key) {
			return domain.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to get cart from cache: %w", err)
	}
	if data == nil {
		return domain.Cart{}, nil
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return cart, nil
}

// Save persists the cart snapshot, refreshing the session TTL.
func (r *RedisStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.cache.Set(ctx, cartKeyPrefix+sessionID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save cart to cache: %w", err)
	}

	return nil
}

// Clear removes the session's cart.
func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, cartKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete cart from cache: %w", err)
	}
	return nil
}
