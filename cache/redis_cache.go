package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGraphCache is a Redis-backed GraphCacheService, storing the same
// JSON payload FileGraphCache persists as a string value under
// "shaperun:graph:<key>".
type RedisGraphCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

var _ GraphCacheService = (*RedisGraphCache)(nil)

const redisKeyPrefix = "shaperun:graph:"

// NewRedisGraphCache wraps an already-configured redis.Client. ttl <= 0
// means entries never expire. logger defaults to log.Default() when nil.
func NewRedisGraphCache(client *redis.Client, ttl time.Duration, logger *log.Logger) *RedisGraphCache {
	if logger == nil {
		logger = log.Default()
	}

	return &RedisGraphCache{client: client, ttl: ttl, logger: logger}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

// Get retrieves and decodes the cached entry for key. The second return
// value is false on a cache miss; it is not an error.
func (c *RedisGraphCache) Get(ctx context.Context, key string) (*graphEntry, bool, error) {
	data, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Printf("cache: redis miss %s", key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get %s: %w", key, err)
	}

	entry, err := unmarshalEntry(data)
	if err != nil {
		return nil, false, fmt.Errorf("cache: decoding %s: %w", key, err)
	}

	c.logger.Printf("cache: redis hit %s (%d nodes, %d edges)", key, len(entry.Nodes), len(entry.Edges))

	return &entry, true, nil
}

// Set encodes graph as JSON and stores it under key, applying the
// configured TTL.
func (c *RedisGraphCache) Set(ctx context.Context, key string, graph graphEntrySource) error {
	entry := entryFromGraph(graph)

	data, err := marshalEntry(entry)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", key, err)
	}

	if err := c.client.Set(ctx, redisKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set %s: %w", key, err)
	}

	c.logger.Printf("cache: redis stored %s (%d nodes, %d edges)", key, len(entry.Nodes), len(entry.Edges))

	return nil
}

// Delete removes key's cache entry. Deleting a missing key is not an error.
func (c *RedisGraphCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("cache: redis del %s: %w", key, err)
	}

	c.logger.Printf("cache: redis deleted %s", key)

	return nil
}

// ClearAll scans and removes every key under the graph cache namespace,
// returning how many were removed. SCAN is used instead of KEYS to avoid
// blocking the Redis server on a large keyspace.
func (c *RedisGraphCache) ClearAll(ctx context.Context) (int, error) {
	var cursor uint64
	count := 0

	for {
		keys, next, err := c.client.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
		if err != nil {
			return count, fmt.Errorf("cache: redis scan: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return count, fmt.Errorf("cache: redis del during clear: %w", err)
			}
			count += len(keys)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.logger.Printf("cache: redis cleared %d entries", count)

	return count, nil
}
