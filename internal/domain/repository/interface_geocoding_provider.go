package repository

import (
	"context"

	"LocalLoop-App/internal/domain/model"
)

// GeocodingProvider is a single upstream geocoding strategy. Providers that
// need a credential report Available() == false when it is missing and are
// skipped without counting as a failure.
type GeocodingProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Available reports whether the provider is configured for use.
	Available() bool

	// Geocode resolves a free-text address to coordinates, or returns an
	// error on network failure, malformed response, or no result.
	Geocode(ctx context.Context, address string) (*model.LatLng, error)
}
