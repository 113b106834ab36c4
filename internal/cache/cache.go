// Package cache is the disposable layer in front of the search store. Losing
// it costs latency, never correctness, so callers treat every failure as a
// miss.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Invalidate deletes every key matching the glob pattern. Failures are
	// logged, never returned.
	Invalidate(ctx context.Context, pattern string) error
}
