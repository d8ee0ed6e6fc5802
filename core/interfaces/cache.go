// Package interfaces defines the contracts the core services depend on.
// Implementations live under infrastructure/ and are injected at startup.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	// Store the serialized listing
//	err := cache.Set(ctx, "metadata:list", data, 30*time.Second)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "metadata:list")
//	if err != nil {
//		// cache miss, read from storage
//	}
//
//	// Invalidate after a submission
//	err = cache.Delete(ctx, "metadata:list")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
