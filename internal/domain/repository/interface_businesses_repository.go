package repository

import (
	"context"

	"LocalLoop-App/internal/domain/model"
)

// BusinessesRepository is the catalog store for approved business listings.
// The catalog is fetched in bulk; the engine assumes it fits in memory.
type BusinessesRepository interface {
	GetByID(ctx context.Context, id string) (*model.Business, error)
	GetAllApproved(ctx context.Context) ([]*model.Business, error)
	Create(ctx context.Context, business *model.Business) error
	UpdateLocation(ctx context.Context, id string, location *model.LatLng) error
	SetOwner(ctx context.Context, id string, ownerID string) error
}
