package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"finguard/internal/config"
	"finguard/pkg/logger"
)

// RedisCache wraps the Redis client with typed operations. It backs the
// rate limiter and the market quote cache; the risk engine itself never
// touches it.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *logger.Logger
}

// NewRedis creates a new Redis client
func NewRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	log = log.WithComponent("redis")
	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("connecting to Redis")

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Info().Msg("connected to Redis successfully")

	return &RedisCache{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		logger:    log,
	}, nil
}

// Client returns the underlying Redis client
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	c.logger.Info().Msg("closing Redis connection")
	return c.client.Close()
}

// key prepends the namespace prefix to a key
func (c *RedisCache) key(k string) string {
	return c.keyPrefix + k
}

// Get retrieves a value from cache
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, c.key(key)).Result()
}

// GetJSON retrieves and unmarshals a JSON value from cache
func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// Set stores a value in cache with optional TTL
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), value, ttl).Err()
}

// SetJSON marshals and stores a value in cache
func (c *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.Set(ctx, key, string(data), ttl)
}

// Delete removes a key from cache
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	prefixedKeys := make([]string, len(keys))
	for i, k := range keys {
		prefixedKeys[i] = c.key(k)
	}
	return c.client.Del(ctx, prefixedKeys...).Err()
}

// Incr increments an integer value
func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, c.key(key)).Result()
}

// CheckRateLimit implements a fixed-window rate limit. It returns whether
// the request is allowed, how many requests remain in the window, and
// when the window resets.
func (c *RedisCache) CheckRateLimit(ctx context.Context, clientID string, limit int64, window time.Duration) (allowed bool, remaining int64, resetTime time.Time, err error) {
	windowStart := time.Now().Truncate(window)
	resetTime = windowStart.Add(window)
	key := fmt.Sprintf("ratelimit:%s:%d", clientID, windowStart.Unix())

	count, err := c.client.Incr(ctx, c.key(key)).Result()
	if err != nil {
		return false, 0, resetTime, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		// First hit of this window, bound the key's lifetime.
		if err := c.client.Expire(ctx, c.key(key), window).Err(); err != nil {
			return false, 0, resetTime, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	remaining = limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= limit, remaining, resetTime, nil
}
