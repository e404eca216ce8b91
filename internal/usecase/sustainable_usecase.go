package usecase

import (
	"context"
	"fmt"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/domain/service"
)

// SustainableBucket is one bucket of the sustainable listing view.
type SustainableBucket struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Businesses  []*model.Business `json:"businesses"`
}

// SustainableUseCase builds the sustainability listing view.
type SustainableUseCase interface {
	// GetBuckets partitions the catalog into the four sustainability buckets.
	GetBuckets(ctx context.Context) ([]SustainableBucket, error)
}

type sustainableUseCaseImpl struct {
	businessesRepo        repository.BusinessesRepository
	sustainabilityService *service.SustainabilityService
}

// NewSustainableUseCase creates a new SustainableUseCase instance.
func NewSustainableUseCase(
	businessesRepo repository.BusinessesRepository,
	sustainabilityService *service.SustainabilityService,
) SustainableUseCase {
	return &sustainableUseCaseImpl{
		businessesRepo:        businessesRepo,
		sustainabilityService: sustainabilityService,
	}
}

// GetBuckets fetches the catalog and partitions it in bucket order.
func (u *sustainableUseCaseImpl) GetBuckets(ctx context.Context) ([]SustainableBucket, error) {
	businesses, err := u.businessesRepo.GetAllApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	partition := u.sustainabilityService.Categorize(businesses)

	buckets := make([]SustainableBucket, 0, len(model.GetAllBuckets()))
	for _, bucketID := range model.GetAllBuckets() {
		buckets = append(buckets, SustainableBucket{
			ID:          bucketID,
			DisplayName: model.GetBucketDisplayName(bucketID),
			Businesses:  partition[bucketID],
		})
	}
	return buckets, nil
}
