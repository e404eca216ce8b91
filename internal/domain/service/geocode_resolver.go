package service

import (
	"context"
	"log"

	"LocalLoop-App/internal/domain/helper"
	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
)

// GeocodeResolver maps a free-text address to coordinates through an ordered
// chain of providers, falling back to the gazetteer and caching every
// outcome. Resolve never fails: total resolution failure is a nil location,
// which callers treat as "distance unknown".
type GeocodeResolver struct {
	providers []repository.GeocodingProvider
	gazetteer []GazetteerEntry
	cache     *GeocodeCache
}

// NewGeocodeResolver creates a resolver over the given provider chain. The
// chain order is the precedence order; the first provider to return a
// coordinate wins.
func NewGeocodeResolver(providers []repository.GeocodingProvider) *GeocodeResolver {
	return &GeocodeResolver{
		providers: providers,
		gazetteer: DefaultGazetteer,
		cache:     NewGeocodeCache(),
	}
}

// NewGeocodeResolverWithCache creates a resolver sharing an external cache,
// so tests can inspect and reset state.
func NewGeocodeResolverWithCache(providers []repository.GeocodingProvider, cache *GeocodeCache) *GeocodeResolver {
	return &GeocodeResolver{
		providers: providers,
		gazetteer: DefaultGazetteer,
		cache:     cache,
	}
}

// Resolve turns an address into coordinates, or nil when unknown.
func (r *GeocodeResolver) Resolve(ctx context.Context, address string) *model.LatLng {
	location, _ := r.ResolveWithOutcome(ctx, address)
	return location
}

// ResolveWithOutcome additionally reports how the address was resolved for
// batch observability.
func (r *GeocodeResolver) ResolveWithOutcome(ctx context.Context, address string) (*model.LatLng, string) {
	key := helper.NormalizeAddress(address)
	if key == "" {
		return nil, model.GeocodeOutcomeFailed
	}

	// Step 1: cache hit, positive or negative, short-circuits everything.
	if location, ok := r.cache.Get(key); ok {
		return location, model.GeocodeOutcomeCached
	}

	// Step 2: strictly sequential provider chain. Every provider failure is
	// contained here; an unavailable provider is skipped silently.
	for _, provider := range r.providers {
		if !provider.Available() {
			continue
		}
		location, err := provider.Geocode(ctx, address)
		if err != nil {
			log.Printf("⚠️ geocode provider %s failed for %q: %v", provider.Name(), address, err)
			continue
		}
		if location != nil {
			r.cache.Put(key, location)
			return location, model.GeocodeOutcomeSuccess
		}
	}

	// Step 3: gazetteer fallback on known place-name substrings.
	if location := LookupGazetteer(r.gazetteer, address); location != nil {
		r.cache.Put(key, location)
		return location, model.GeocodeOutcomeFallback
	}

	// Step 4: cache the negative result so the chain never re-runs.
	r.cache.Put(key, nil)
	return nil, model.GeocodeOutcomeFailed
}
