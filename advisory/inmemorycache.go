package advisory

import (
	"sync"
	"time"
)

// InMemoryCache is a simple in-memory implementation of Cache.
// Thread-safe for concurrent access.
type InMemoryCache struct {
	rules    []*Rule
	cachedAt time.Time
	config   CacheConfig
	mu       sync.RWMutex
	isValid  bool
}

// NewInMemoryCache creates a new in-memory rules cache.
func NewInMemoryCache(config CacheConfig) *InMemoryCache {
	return &InMemoryCache{
		config:  config,
		isValid: false,
	}
}

// Get retrieves cached rules.
// Returns nil if the cache is invalid or expired.
func (c *InMemoryCache) Get() []*Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return nil
	}

	if c.config.TTL > 0 {
		if time.Since(c.cachedAt) > c.config.TTL {
			return nil
		}
	}

	// Return copy to prevent external modifications
	rulesCopy := make([]*Rule, len(c.rules))
	copy(rulesCopy, c.rules)
	return rulesCopy
}

// Set stores rules in cache.
func (c *InMemoryCache) Set(rules []*Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Store copy to prevent external modifications
	c.rules = make([]*Rule, len(rules))
	copy(c.rules, rules)
	c.cachedAt = time.Now()
	c.isValid = true
}

// Invalidate clears the cache.
func (c *InMemoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isValid = false
	c.rules = nil
}

// IsValid returns true if the cache contains valid data.
func (c *InMemoryCache) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return false
	}

	if c.config.TTL > 0 {
		return time.Since(c.cachedAt) <= c.config.TTL
	}

	return true
}
