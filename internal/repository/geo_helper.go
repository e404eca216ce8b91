package repository

import (
	"github.com/paulmach/orb"

	"LocalLoop-App/internal/domain/model"
)

// GeoPoint is the JSON representation of a PostGIS POINT.
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LatLngToGeoPoint converts a model.LatLng into PostGIS POINT form.
func LatLngToGeoPoint(location *model.LatLng) *GeoPoint {
	if location == nil {
		return nil
	}

	point := orb.Point{location.Lng, location.Lat}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToLatLng converts a PostGIS POINT into a model.LatLng.
func GeoPointToLatLng(geoPoint *GeoPoint) *model.LatLng {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return nil
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}

	return &model.LatLng{
		Lat: point.Lat(),
		Lng: point.Lon(),
	}
}

// ViewportBound builds a padded bounding box around a center point for map
// viewport queries. radiusMeters is converted with the ~111km/degree
// approximation, then padded by about 100m.
func ViewportBound(center model.LatLng, radiusMeters int) orb.Bound {
	delta := float64(radiusMeters) / 111_000.0

	centerPoint := orb.Point{center.Lng, center.Lat}
	bound := orb.Bound{
		Min: orb.Point{centerPoint.Lon() - delta, centerPoint.Lat() - delta},
		Max: orb.Point{centerPoint.Lon() + delta, centerPoint.Lat() + delta},
	}
	bound = bound.Extend(centerPoint)

	padding := 0.001 // about 111m
	return bound.Pad(padding)
}
