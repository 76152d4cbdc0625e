package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores raw byte payloads under a key prefix
// ⭐ SSOT: 캐시 헬퍼는 여기서만
type Cache struct {
	client *Client
	prefix string
}

// NewCache creates a new cache helper
func NewCache(client *Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Key returns the full redis key for key
func (c *Cache) Key(key string) string {
	return fmt.Sprintf("%s:cache:%s", c.prefix, key)
}

// Get retrieves a cached payload; found is false on a miss or when disabled
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.client.Enabled() {
		return nil, false, nil
	}

	data, err := c.client.Redis().Get(ctx, c.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get failed: %w", err)
	}
	return data, true, nil
}

// Set stores a payload with TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.client.Enabled() {
		return nil
	}
	return c.client.Redis().Set(ctx, c.Key(key), value, ttl).Err()
}

// Delete removes a cached payload
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.client.Enabled() {
		return nil
	}
	return c.client.Redis().Del(ctx, c.Key(key)).Err()
}

// GetOrFetch returns the cached payload or calls fn and caches its result.
// Cache read and write failures fall through to fn / are ignored.
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, bool, error) {
	if data, found, err := c.Get(ctx, key); err == nil && found {
		return data, true, nil
	}

	data, err := fn()
	if err != nil {
		return nil, false, err
	}

	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}
