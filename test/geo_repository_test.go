package test

import (
	"context"
	"log"
	"testing"

	"LocalLoop-App/internal/domain/model"
)

func TestBusinessGeoRepository_FindNearby(t *testing.T) {
	if missing := missingEnv("SUPABASE_URL", "SUPABASE_DB_PASSWORD"); len(missing) > 0 {
		_ = setupTestEnvironment()
		if missing = missingEnv("SUPABASE_URL", "SUPABASE_DB_PASSWORD"); len(missing) > 0 {
			t.Skipf("required environment variables are not set: %v", missing)
		}
	}

	geoRepo, cleanup, err := setupTestGeoRepository()
	if err != nil {
		t.Fatalf("Failed to connect to the geo store: %v", err)
	}
	defer cleanup()

	// Downtown Oakville
	center := model.LatLng{Lat: 43.4675, Lng: -79.6877}

	t.Run("radius query returns businesses ordered by distance", func(t *testing.T) {
		businesses, err := geoRepo.FindNearby(context.Background(), center, 5000, 20)
		if err != nil {
			t.Fatalf("FindNearby failed: %v", err)
		}

		log.Printf("📍 businesses within 5km of downtown Oakville: %d", len(businesses))
		for i, business := range businesses {
			if i >= 5 {
				break
			}
			log.Printf("   %d. %s %v", i+1, business.Name, business.Location)
		}

		for _, business := range businesses {
			if business.Location == nil {
				t.Errorf("business %s returned without a location", business.ID)
			}
		}
	})

	t.Run("zero radius returns nothing", func(t *testing.T) {
		businesses, err := geoRepo.FindNearby(context.Background(), center, 0, 20)
		if err != nil {
			t.Fatalf("FindNearby failed: %v", err)
		}
		if len(businesses) != 0 {
			t.Errorf("expected no businesses at zero radius, got %d", len(businesses))
		}
	})
}
