package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/nmishr/currency_exchange/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements the repositories.Cache interface on a Redis backend.
// Entry expiry is delegated entirely to Redis TTLs.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a new RedisCache.
func NewRedisCache(addr, password string, db int, logger *slog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client, logger: logger}
}

// Get retrieves the value for key. A missing or expired entry yields (nil, nil).
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("Cache miss", slog.String("key", key))
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}
	return val, nil
}

// Set stores value under key with the given time-to-live.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Remove deletes the entry for key, if any.
func (c *RedisCache) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// Ping verifies the Redis connection at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ portsrepo.Cache = (*RedisCache)(nil)
