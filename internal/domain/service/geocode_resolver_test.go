package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
)

// stubProvider is a scriptable geocoding provider that counts its calls.
type stubProvider struct {
	name      string
	available bool
	location  *model.LatLng
	err       error
	calls     int
}

func (p *stubProvider) Name() string    { return p.name }
func (p *stubProvider) Available() bool { return p.available }

func (p *stubProvider) Geocode(ctx context.Context, address string) (*model.LatLng, error) {
	p.calls++
	return p.location, p.err
}

func TestGeocodeResolver_ProviderChain(t *testing.T) {
	ctx := context.Background()

	t.Run("first provider with a result wins", func(t *testing.T) {
		first := &stubProvider{name: "first", available: true, location: &model.LatLng{Lat: 43.5, Lng: -79.7}}
		second := &stubProvider{name: "second", available: true, location: &model.LatLng{Lat: 1, Lng: 1}}
		resolver := NewGeocodeResolver([]repository.GeocodingProvider{first, second})

		location, outcome := resolver.ResolveWithOutcome(ctx, "287 Kerr St, Oakville, ON")

		assert.Equal(t, model.GeocodeOutcomeSuccess, outcome)
		assert.Equal(t, 43.5, location.Lat)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 0, second.calls, "chain must stop at the first hit")
	})

	t.Run("unavailable provider is skipped without a call", func(t *testing.T) {
		keyless := &stubProvider{name: "keyless", available: false, location: &model.LatLng{Lat: 1, Lng: 1}}
		fallback := &stubProvider{name: "fallback", available: true, location: &model.LatLng{Lat: 43.3, Lng: -79.8}}
		resolver := NewGeocodeResolver([]repository.GeocodingProvider{keyless, fallback})

		location := resolver.Resolve(ctx, "2025 Guelph Line, Burlington, ON")

		assert.Equal(t, 0, keyless.calls)
		assert.Equal(t, 1, fallback.calls)
		assert.Equal(t, 43.3, location.Lat)
	})

	t.Run("provider error falls through to the next provider", func(t *testing.T) {
		failing := &stubProvider{name: "failing", available: true, err: errors.New("quota exceeded")}
		healthy := &stubProvider{name: "healthy", available: true, location: &model.LatLng{Lat: 43.6, Lng: -79.4}}
		resolver := NewGeocodeResolver([]repository.GeocodingProvider{failing, healthy})

		location, outcome := resolver.ResolveWithOutcome(ctx, "100 Queen St W, Toronto, ON")

		assert.Equal(t, model.GeocodeOutcomeSuccess, outcome)
		assert.Equal(t, 1, failing.calls)
		assert.Equal(t, 1, healthy.calls)
		assert.NotNil(t, location)
	})
}

func TestGeocodeResolver_GazetteerFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Oakville address resolves via gazetteer when providers are down", func(t *testing.T) {
		resolver := NewGeocodeResolver([]repository.GeocodingProvider{
			&stubProvider{name: "google", available: false},
			&stubProvider{name: "opencage", available: false},
		})

		location, outcome := resolver.ResolveWithOutcome(ctx, "123 Lakeshore Rd W, Oakville, ON")

		assert.Equal(t, model.GeocodeOutcomeFallback, outcome)
		assert.Equal(t, 43.4675, location.Lat)
		assert.Equal(t, -79.6877, location.Lng)
	})

	t.Run("gazetteer match is case-insensitive", func(t *testing.T) {
		resolver := NewGeocodeResolver(nil)

		location := resolver.Resolve(ctx, "somewhere in OAKVILLE")

		assert.NotNil(t, location)
		assert.Equal(t, 43.4675, location.Lat)
	})

	t.Run("earlier gazetteer entry wins when two places match", func(t *testing.T) {
		resolver := NewGeocodeResolver(nil)

		// Mentions both oakville and toronto; oakville is declared first.
		location := resolver.Resolve(ctx, "Oakville office, Toronto region")

		assert.Equal(t, 43.4675, location.Lat)
	})
}

func TestGeocodeResolver_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("second resolution is served from cache", func(t *testing.T) {
		provider := &stubProvider{name: "counted", available: true, location: &model.LatLng{Lat: 43.5, Lng: -79.6}}
		resolver := NewGeocodeResolver([]repository.GeocodingProvider{provider})

		first, firstOutcome := resolver.ResolveWithOutcome(ctx, "60 Bronte Rd, Oakville, ON")
		second, secondOutcome := resolver.ResolveWithOutcome(ctx, "60 Bronte Rd, Oakville, ON")

		assert.Equal(t, model.GeocodeOutcomeSuccess, firstOutcome)
		assert.Equal(t, model.GeocodeOutcomeCached, secondOutcome)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, provider.calls, "cache hit must not re-run the chain")
	})

	t.Run("cache key normalizes case and whitespace", func(t *testing.T) {
		provider := &stubProvider{name: "counted", available: true, location: &model.LatLng{Lat: 43.5, Lng: -79.6}}
		resolver := NewGeocodeResolver([]repository.GeocodingProvider{provider})

		resolver.Resolve(ctx, "60 Bronte Rd, Oakville, ON")
		resolver.Resolve(ctx, "  60 BRONTE RD, OAKVILLE, ON  ")

		assert.Equal(t, 1, provider.calls)
	})

	t.Run("unresolvable address is negatively cached", func(t *testing.T) {
		provider := &stubProvider{name: "nohit", available: true, location: nil}
		cache := NewGeocodeCache()
		resolver := NewGeocodeResolverWithCache([]repository.GeocodingProvider{provider}, cache)

		first, firstOutcome := resolver.ResolveWithOutcome(ctx, "Nowhereville, Mars")
		second, secondOutcome := resolver.ResolveWithOutcome(ctx, "Nowhereville, Mars")

		assert.Nil(t, first)
		assert.Equal(t, model.GeocodeOutcomeFailed, firstOutcome)
		assert.Nil(t, second)
		assert.Equal(t, model.GeocodeOutcomeCached, secondOutcome)
		assert.Equal(t, 1, provider.calls, "negative cache must stop the second sweep")
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("empty address never touches the cache or the chain", func(t *testing.T) {
		provider := &stubProvider{name: "counted", available: true}
		cache := NewGeocodeCache()
		resolver := NewGeocodeResolverWithCache([]repository.GeocodingProvider{provider}, cache)

		location, outcome := resolver.ResolveWithOutcome(ctx, "   ")

		assert.Nil(t, location)
		assert.Equal(t, model.GeocodeOutcomeFailed, outcome)
		assert.Equal(t, 0, provider.calls)
		assert.Equal(t, 0, cache.Len())
	})
}

func TestGeocodeCache_FirstWriteWins(t *testing.T) {
	cache := NewGeocodeCache()

	cache.Put("key", &model.LatLng{Lat: 1, Lng: 2})
	cache.Put("key", &model.LatLng{Lat: 9, Lng: 9})

	location, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 1.0, location.Lat, "a duplicate write must not flip the stored result")

	cache.Put("missing", nil)
	location, ok = cache.Get("missing")
	assert.True(t, ok)
	assert.Nil(t, location)
}
