package advisory

import "time"

// Cache provides an abstraction for caching the active rules list, so
// evaluation does not hit the store on every prediction request.
type Cache interface {
	// Get retrieves cached rules, returns nil on cache miss or expiry
	Get() []*Rule

	// Set stores rules in cache
	Set(rules []*Rule)

	// Invalidate clears the cache, forcing a refresh on next Get
	Invalidate()

	// IsValid returns true if cache has valid data
	IsValid() bool
}

// CacheConfig holds configuration for cache behavior.
type CacheConfig struct {
	// TTL is the time-to-live for cached entries.
	// Set to 0 for no expiration (manual invalidation only).
	TTL time.Duration
}

// DefaultCacheConfig returns the defaults for advisory rule caching.
// Rules only change when the process restarts, so no TTL is needed.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 0}
}
