// Package cache provides the response cache used by the HTTP layer. Two
// backends exist: an in-process map with TTL eviction (the default) and
// Redis for multi-instance deployments. A miss is never an error; callers
// recompute and re-store.
package cache

import "context"

// Cache stores computed responses keyed by request digest.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores a value. Failures are swallowed; caching is best-effort.
	Set(ctx context.Context, key, value string)
}
