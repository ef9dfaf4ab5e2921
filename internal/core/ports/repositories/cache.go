package repositories

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry. It backs
// both cached rates (serialized JSON) and per-client trade counters (plain
// integer strings). The store is externally synchronized; callers get no
// compare-and-swap, only independent Get/Set operations.
type Cache interface {
	// Get retrieves the value for key. A missing or expired entry yields
	// (nil, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Remove deletes the entry for key, if any.
	Remove(ctx context.Context, key string) error
}
