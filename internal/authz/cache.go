package authz

import (
	"sync"
	"time"
)

type cacheEntry struct {
	profile *Profile
	expires time.Time
}

// profileCache holds authenticated profiles with a TTL. Safe for concurrent
// use.
type profileCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newProfileCache(ttl time.Duration) *profileCache {
	return &profileCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *profileCache) get(employeeID string) (*Profile, bool) {
	c.mu.RLock()
	entry, ok := c.entries[employeeID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		c.evict(employeeID)
		return nil, false
	}
	return entry.profile, true
}

func (c *profileCache) put(employeeID string, profile *Profile) {
	c.mu.Lock()
	c.entries[employeeID] = cacheEntry{
		profile: profile,
		expires: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *profileCache) evict(employeeID string) {
	c.mu.Lock()
	delete(c.entries, employeeID)
	c.mu.Unlock()
}
