package repository

import (
	"context"

	"LocalLoop-App/internal/domain/model"
)

// BusinessGeoRepository is the geospatial mirror of the catalog used by the
// map view. Backed by PostGIS rather than the document store because the
// document store cannot run radius queries.
type BusinessGeoRepository interface {
	FindNearby(ctx context.Context, location model.LatLng, radiusMeters int, limit int) ([]*model.Business, error)
	UpsertLocation(ctx context.Context, business *model.Business) error
}
