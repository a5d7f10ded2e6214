package store

import (
	"context"

	"github.com/GTDGit/fas_dashboard/internal/cache"
)

// RedisBackend stores each collection under its own Redis string key.
type RedisBackend struct {
	redis *cache.RedisClient
}

// NewRedisBackend creates a RedisBackend.
func NewRedisBackend(redis *cache.RedisClient) *RedisBackend {
	return &RedisBackend{redis: redis}
}

// Read fetches the raw value of key.
func (b *RedisBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	v, found, err := b.redis.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}
	return []byte(v), true, nil
}

// Write overwrites key without expiry.
func (b *RedisBackend) Write(ctx context.Context, key string, value []byte) error {
	return b.redis.Set(ctx, key, string(value), 0)
}

// Ping checks the Redis connection.
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.redis.Ping(ctx)
}
