package adapters

import (
	"context"
	"fmt"

	"drherbs-api/internal/core/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cartChangedChannel is the pub/sub channel carrying cart-change events.
const cartChangedChannel = "cart:updated"

// RedisNotifier implements ports.Notifier by publishing the session id on a
// Redis pub/sub channel. Interested observers (badge counters, other
// storefront instances) subscribe to refresh their view of the cart.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a new RedisNotifier from a Redis URL.
func NewRedisNotifier(redisURL string) (*RedisNotifier, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisNotifier{client: redis.NewClient(opts)}, nil
}

// CartChanged publishes the session id. Delivery is best-effort: a publish
// failure is logged, never surfaced to the shopper.
func (n *RedisNotifier) CartChanged(ctx context.Context, sessionID string) {
	if err := n.client.Publish(ctx, cartChangedChannel, sessionID).Err(); err != nil {
		logger.Get().Warn("Failed to publish cart change",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

// Close closes the Redis connection.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}

// LogNotifier implements ports.Notifier with a structured log line only.
// Used when cart events are disabled in configuration.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// CartChanged logs the change at debug level.
func (n *LogNotifier) CartChanged(_ context.Context, sessionID string) {
	logger.Get().Debug("Cart changed", zap.String("session_id", sessionID))
}
