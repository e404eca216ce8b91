package repository

import (
	"context"

	"LocalLoop-App/internal/domain/model"
)

// ProductsRepository is the catalog store for products.
type ProductsRepository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]*model.Product, error)
	GetAll(ctx context.Context) ([]*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
}
