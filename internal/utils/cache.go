package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error matching
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// All helpers treat a nil client as a disabled cache: reads miss, writes are no-ops.

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Caching disabled
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err // Corrupt entry counts as a miss
	}
	return true, nil
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes keys from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if rdb == nil || len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err() // Delete keys from Redis
}
