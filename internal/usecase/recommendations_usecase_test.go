package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/domain/service"
)

func TestRecommendationsUseCase_GetRecommendations(t *testing.T) {
	ctx := context.Background()

	businesses := &stubBusinessesRepo{approved: []*model.Business{
		{ID: "market", Tags: []string{"Organic", "Local", "Bakery"}},
		{ID: "hardware", Tags: []string{"Tools"}},
		{ID: "farm", Tags: []string{"Organic"}},
	}}

	t.Run("ranked by overlap with the stored profile", func(t *testing.T) {
		profile := model.NewUserProfile("u1")
		profile.MergeLikedTags([]string{"Organic", "Local"})
		profiles := &stubProfilesRepo{profiles: map[string]*model.UserProfile{"u1": profile}}

		useCase := NewRecommendationsUseCase(businesses, profiles, service.NewRecommendService())

		ranked, err := useCase.GetRecommendations(ctx, "u1", 0)
		require.NoError(t, err)

		require.Len(t, ranked, 2)
		assert.Equal(t, "market", ranked[0].Business.ID)
		assert.Equal(t, 2, ranked[0].MatchScore)
		assert.Equal(t, []string{"Organic", "Local"}, ranked[0].MatchingTags)
		assert.Equal(t, "farm", ranked[1].Business.ID)
	})

	t.Run("user without a profile gets an empty list, not an error", func(t *testing.T) {
		profiles := &stubProfilesRepo{profiles: map[string]*model.UserProfile{}}
		useCase := NewRecommendationsUseCase(businesses, profiles, service.NewRecommendService())

		ranked, err := useCase.GetRecommendations(ctx, "new-user", 0)

		require.NoError(t, err)
		assert.Empty(t, ranked)
	})
}
