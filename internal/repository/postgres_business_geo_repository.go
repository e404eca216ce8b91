package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/infrastructure/database"
)

// PostgresBusinessGeoRepository mirrors located businesses into a PostGIS
// table so the map view can run radius queries the document store cannot.
type PostgresBusinessGeoRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresBusinessGeoRepository creates a new geo mirror repository.
func NewPostgresBusinessGeoRepository(client *database.PostgreSQLClient) repository.BusinessGeoRepository {
	return &PostgresBusinessGeoRepository{client: client}
}

// businessGeoResult receives one row of the PostGIS query.
type businessGeoResult struct {
	ID             string
	Name           string
	Category       string
	Address        string
	Tags           string
	Rating         float64
	Website        sql.NullString
	Location       string
	DistanceMeters float64
}

// toBusiness converts a row into the domain model.
func (br *businessGeoResult) toBusiness() (*model.Business, error) {
	var geoPoint GeoPoint
	if err := json.Unmarshal([]byte(br.Location), &geoPoint); err != nil {
		return nil, fmt.Errorf("failed to parse location JSONB: %w", err)
	}

	var tags []string
	if err := json.Unmarshal([]byte(br.Tags), &tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags JSONB: %w", err)
	}

	business := &model.Business{
		ID:       br.ID,
		Name:     br.Name,
		Category: br.Category,
		Address:  br.Address,
		Tags:     tags,
		Rating:   br.Rating,
		Location: GeoPointToLatLng(&geoPoint),
		Status:   model.BusinessStatusApproved,
	}
	if br.Website.Valid {
		business.Website = &br.Website.String
	}
	return business, nil
}

// FindNearby runs an ST_DWithin radius query ordered by distance.
func (r *PostgresBusinessGeoRepository) FindNearby(ctx context.Context, location model.LatLng, radiusMeters int, limit int) ([]*model.Business, error) {
	query := `
		SELECT id, name, category, address, tags, rating, website,
		       ST_AsGeoJSON(location) AS location,
		       ST_Distance(location::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_meters
		FROM business_locations
		WHERE ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance_meters
		LIMIT $4`

	rows, err := r.client.DB.QueryContext(ctx, query, location.Lng, location.Lat, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*model.Business
	for rows.Next() {
		var result businessGeoResult
		err := rows.Scan(&result.ID, &result.Name, &result.Category, &result.Address,
			&result.Tags, &result.Rating, &result.Website, &result.Location, &result.DistanceMeters)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nearby business row: %w", err)
		}

		business, err := result.toBusiness()
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nearby business rows: %w", err)
	}

	return businesses, nil
}

// UpsertLocation mirrors one located business into the geo table. Businesses
// without coordinates are skipped: the map simply cannot place them.
func (r *PostgresBusinessGeoRepository) UpsertLocation(ctx context.Context, business *model.Business) error {
	if !business.HasLocation() {
		return nil
	}

	tags, err := json.Marshal(business.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	query := `
		INSERT INTO business_locations (id, name, category, address, tags, rating, website, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, ST_SetSRID(ST_MakePoint($8, $9), 4326))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			address = EXCLUDED.address,
			tags = EXCLUDED.tags,
			rating = EXCLUDED.rating,
			website = EXCLUDED.website,
			location = EXCLUDED.location`

	var website sql.NullString
	if business.Website != nil {
		website = sql.NullString{String: *business.Website, Valid: true}
	}

	_, err = r.client.DB.ExecContext(ctx, query,
		business.ID, business.Name, business.Category, business.Address,
		string(tags), business.Rating, website,
		business.Location.Lng, business.Location.Lat)
	if err != nil {
		return fmt.Errorf("failed to upsert business location: %w", err)
	}
	return nil
}
