package usecase

import (
	"context"
	"fmt"
	"log"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/repository"
	"LocalLoop-App/internal/domain/service"
)

// RecommendationsUseCase ranks the catalog against a user's liked tags.
type RecommendationsUseCase interface {
	// GetRecommendations returns the top matching businesses for a user.
	GetRecommendations(ctx context.Context, userID string, limit int) ([]*model.ScoredBusiness, error)
}

type recommendationsUseCaseImpl struct {
	businessesRepo   repository.BusinessesRepository
	userProfilesRepo repository.UserProfilesRepository
	recommendService *service.RecommendService
}

// NewRecommendationsUseCase creates a new RecommendationsUseCase instance.
func NewRecommendationsUseCase(
	businessesRepo repository.BusinessesRepository,
	userProfilesRepo repository.UserProfilesRepository,
	recommendService *service.RecommendService,
) RecommendationsUseCase {
	return &recommendationsUseCaseImpl{
		businessesRepo:   businessesRepo,
		userProfilesRepo: userProfilesRepo,
		recommendService: recommendService,
	}
}

// GetRecommendations fetches the catalog and profile, then scores and ranks.
func (u *recommendationsUseCaseImpl) GetRecommendations(ctx context.Context, userID string, limit int) ([]*model.ScoredBusiness, error) {
	// Step 1: bulk-fetch the approved catalog
	businesses, err := u.businessesRepo.GetAllApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Step 2: load the user's accumulated preferences
	profile, err := u.userProfilesRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	// Step 3: rank by tag overlap
	ranked := u.recommendService.RankForProfile(businesses, profile, limit)
	log.Printf("✅ recommendations for %s: %d of %d businesses matched", userID, len(ranked), len(businesses))
	return ranked, nil
}
