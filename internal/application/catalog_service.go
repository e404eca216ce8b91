package application

import (
	"context"
	"fmt"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
)

// CatalogService provides the read-only browsing surface over the approved
// catalog.
type CatalogService interface {
	// ListBusinesses returns the whole approved catalog.
	ListBusinesses(ctx context.Context) ([]*model.Business, error)

	// GetBusiness returns one approved business.
	GetBusiness(ctx context.Context, id string) (*model.Business, error)

	// GetBusinessProducts returns the products of one business.
	GetBusinessProducts(ctx context.Context, businessID string) ([]*model.Product, error)

	// NearbyBusinesses returns located businesses within a radius for the
	// map view.
	NearbyBusinesses(ctx context.Context, location model.LatLng, radiusMeters int, limit int) ([]*model.Business, error)
}

// catalogServiceImpl is the CatalogService implementation.
type catalogServiceImpl struct {
	businessesRepo repository.BusinessesRepository
	productsRepo   repository.ProductsRepository
	geoRepo        repository.BusinessGeoRepository
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(
	businessesRepo repository.BusinessesRepository,
	productsRepo repository.ProductsRepository,
	geoRepo repository.BusinessGeoRepository,
) CatalogService {
	return &catalogServiceImpl{
		businessesRepo: businessesRepo,
		productsRepo:   productsRepo,
		geoRepo:        geoRepo,
	}
}

// ListBusinesses bulk-fetches the approved catalog.
func (s *catalogServiceImpl) ListBusinesses(ctx context.Context) ([]*model.Business, error) {
	businesses, err := s.businessesRepo.GetAllApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return businesses, nil
}

// GetBusiness fetches one business.
func (s *catalogServiceImpl) GetBusiness(ctx context.Context, id string) (*model.Business, error) {
	return s.businessesRepo.GetByID(ctx, id)
}

// GetBusinessProducts fetches a business's products by its foreign key. The
// single reliable key is business_id; the denormalized name is display-only.
func (s *catalogServiceImpl) GetBusinessProducts(ctx context.Context, businessID string) ([]*model.Product, error) {
	if _, err := s.businessesRepo.GetByID(ctx, businessID); err != nil {
		return nil, err
	}
	products, err := s.productsRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// NearbyBusinesses runs the radius query against the geo mirror.
func (s *catalogServiceImpl) NearbyBusinesses(ctx context.Context, location model.LatLng, radiusMeters int, limit int) ([]*model.Business, error) {
	businesses, err := s.geoRepo.FindNearby(ctx, location, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby businesses: %w", err)
	}
	return businesses, nil
}
