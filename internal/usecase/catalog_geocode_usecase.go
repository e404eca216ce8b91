package usecase

import (
	"context"
	"fmt"
	"log"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/domain/service"
)

// CatalogGeocodeUseCase resolves coordinates for the catalog and mirrors
// located businesses into the geo table.
type CatalogGeocodeUseCase interface {
	// RefreshLocations geocodes every approved business without coordinates
	// and returns the settlement summary.
	RefreshLocations(ctx context.Context) (*model.GeocodeSummary, error)
}

type catalogGeocodeUseCaseImpl struct {
	businessesRepo repository.BusinessesRepository
	geoRepo        repository.BusinessGeoRepository
	batchGeocoder  *service.ParallelGeocodeService
}

// NewCatalogGeocodeUseCase creates a new CatalogGeocodeUseCase instance.
func NewCatalogGeocodeUseCase(
	businessesRepo repository.BusinessesRepository,
	geoRepo repository.BusinessGeoRepository,
	batchGeocoder *service.ParallelGeocodeService,
) CatalogGeocodeUseCase {
	return &catalogGeocodeUseCaseImpl{
		businessesRepo: businessesRepo,
		geoRepo:        geoRepo,
		batchGeocoder:  batchGeocoder,
	}
}

// RefreshLocations runs the batch geocode and writes every resolved
// coordinate back to the document store and the geo mirror.
func (u *catalogGeocodeUseCaseImpl) RefreshLocations(ctx context.Context) (*model.GeocodeSummary, error) {
	// Step 1: collect businesses still missing coordinates
	businesses, err := u.businessesRepo.GetAllApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	byID := make(map[string]*model.Business, len(businesses))
	var unresolved []*model.Business
	for _, business := range businesses {
		byID[business.ID] = business
		if !business.HasLocation() {
			unresolved = append(unresolved, business)
		}
	}
	if len(unresolved) == 0 {
		log.Printf("✅ catalog already fully geocoded (%d businesses)", len(businesses))
		return &model.GeocodeSummary{}, nil
	}

	// Step 2: fan out all attempts and wait for aggregated settlement
	summary := u.batchGeocoder.GeocodeCatalog(ctx, unresolved)

	// Step 3: persist resolved coordinates; failures stay location-less
	for _, result := range summary.Results {
		if result.Location == nil {
			continue
		}
		if err := u.businessesRepo.UpdateLocation(ctx, result.BusinessID, result.Location); err != nil {
			log.Printf("⚠️ failed to save location for %s: %v", result.BusinessID, err)
			continue
		}
		if business, ok := byID[result.BusinessID]; ok {
			business.Location = result.Location
			if err := u.geoRepo.UpsertLocation(ctx, business); err != nil {
				log.Printf("⚠️ failed to mirror location for %s: %v", result.BusinessID, err)
			}
		}
	}

	return summary, nil
}
