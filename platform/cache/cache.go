// Package cache provides a small Redis-backed JSON cache.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gigportal_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is used when a cache is created with a zero TTL.
const DefaultTTL = 10 * time.Minute

// JSONCache stores JSON-encoded values under a key prefix.
// Read and write failures are logged and treated as misses.
type JSONCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *logger.Logger
}

// NewClient parses a redis:// or rediss:// URL and returns a connected client.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewJSONCache creates a cache whose keys all start with prefix.
func NewJSONCache(client *redis.Client, prefix string, ttl time.Duration, log *logger.Logger) *JSONCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JSONCache{client: client, prefix: prefix, ttl: ttl, log: log}
}

// Get decodes the cached value for key into dest. It reports false on a miss.
func (c *JSONCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn("cache get failed", "key", c.prefix+key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry undecodable", "key", c.prefix+key, "error", err)
		return false
	}
	return true
}

// Set stores value under key with the cache TTL.
func (c *JSONCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache encode failed", "key", c.prefix+key, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", c.prefix+key, "error", err)
	}
}

// InvalidateAll removes every key under the cache prefix.
func (c *JSONCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", 100).Result()
		if err != nil {
			c.log.Warn("cache scan failed", "prefix", c.prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Warn("cache delete failed", "prefix", c.prefix, "error", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
