package service

import (
	"sync"

	"LocalLoop-App/internal/domain/model"
)

// GeocodeCache memoizes resolution results per normalized address for the
// lifetime of the process. Negative results are cached too so a dead address
// never triggers a second provider sweep. Write-once, read-many; no eviction
// and no TTL. The mutex is required because batch geocoding resolves many
// addresses concurrently into the same cache.
type GeocodeCache struct {
	mu      sync.Mutex
	entries map[string]*model.LatLng
}

// NewGeocodeCache creates an empty cache. Construct one per resolver so
// tests can isolate and reset state.
func NewGeocodeCache() *GeocodeCache {
	return &GeocodeCache{
		entries: make(map[string]*model.LatLng),
	}
}

// Get returns the cached result and whether the key was resolved before.
// A nil result with ok == true is a cached "not found".
func (c *GeocodeCache) Get(key string) (*model.LatLng, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	location, ok := c.entries[key]
	return location, ok
}

// Put stores the result for a key, including nil for "not found". The first
// write wins; a concurrent duplicate resolution cannot flip a stored result.
func (c *GeocodeCache) Put(key string, location *model.LatLng) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return
	}
	c.entries[key] = location
}

// Len returns the number of cached addresses.
func (c *GeocodeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
