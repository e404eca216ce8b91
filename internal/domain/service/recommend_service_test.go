package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LocalLoop-App/internal/domain/helper"
	"LocalLoop-App/internal/domain/model"
)

func taggedBusiness(id string, tags ...string) *model.Business {
	return &model.Business{ID: id, Name: id, Tags: tags, Status: model.BusinessStatusApproved}
}

func TestRecommendService_Score(t *testing.T) {
	service := NewRecommendService()
	userTags := helper.TagSet([]string{"Organic", "Local", "Vegan"})

	t.Run("score is the size of the tag overlap", func(t *testing.T) {
		scored := service.Score(taggedBusiness("b1", "Organic", "Local", "Bakery"), userTags)

		assert.Equal(t, 2, scored.MatchScore)
		assert.Equal(t, []string{"Organic", "Local"}, scored.MatchingTags)
	})

	t.Run("tag comparison is case-sensitive", func(t *testing.T) {
		scored := service.Score(taggedBusiness("b1", "organic", "LOCAL"), userTags)

		assert.Equal(t, 0, scored.MatchScore)
		assert.Empty(t, scored.MatchingTags)
	})

	t.Run("no overlap scores zero", func(t *testing.T) {
		scored := service.Score(taggedBusiness("b1", "Hardware", "Tools"), userTags)

		assert.Equal(t, 0, scored.MatchScore)
	})
}

func TestRecommendService_Rank(t *testing.T) {
	service := NewRecommendService()
	userTags := helper.TagSet([]string{"Organic", "Local", "Vegan"})

	t.Run("ranking is descending and drops zero scores", func(t *testing.T) {
		catalog := []*model.Business{
			taggedBusiness("one-match", "Organic", "Bakery"),
			taggedBusiness("no-match", "Hardware"),
			taggedBusiness("three-match", "Organic", "Local", "Vegan"),
			taggedBusiness("two-match", "Local", "Vegan"),
		}

		ranked := service.Rank(catalog, userTags, 0)

		assert.Len(t, ranked, 3)
		assert.Equal(t, "three-match", ranked[0].Business.ID)
		assert.Equal(t, "two-match", ranked[1].Business.ID)
		assert.Equal(t, "one-match", ranked[2].Business.ID)
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].MatchScore, ranked[i].MatchScore)
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		catalog := []*model.Business{
			taggedBusiness("alpha", "Organic"),
			taggedBusiness("beta", "Local"),
			taggedBusiness("gamma", "Vegan"),
		}

		ranked := service.Rank(catalog, userTags, 0)

		assert.Len(t, ranked, 3)
		assert.Equal(t, "alpha", ranked[0].Business.ID)
		assert.Equal(t, "beta", ranked[1].Business.ID)
		assert.Equal(t, "gamma", ranked[2].Business.ID)
	})

	t.Run("result is capped at the limit", func(t *testing.T) {
		var catalog []*model.Business
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			catalog = append(catalog, taggedBusiness(id, "Organic"))
		}

		ranked := service.Rank(catalog, userTags, 0)

		assert.Len(t, ranked, DefaultRecommendationLimit)
	})

	t.Run("empty profile yields no recommendations", func(t *testing.T) {
		catalog := []*model.Business{taggedBusiness("b1", "Organic")}

		ranked := service.RankForProfile(catalog, model.NewUserProfile("u1"), 0)

		assert.Empty(t, ranked)
	})
}
