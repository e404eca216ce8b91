package service

import (
	"sort"

	"LocalLoop-App/internal/domain/helper"
	"LocalLoop-App/internal/domain/model"
)

// DefaultRecommendationLimit is how many ranked businesses a pass returns.
const DefaultRecommendationLimit = 6

// RecommendService ranks the catalog against a user's accumulated liked
// tags. Tag comparison here is case-sensitive exact membership; only the
// sustainability view matches case-insensitively. The two semantics are
// kept separate on purpose.
type RecommendService struct{}

// NewRecommendService creates a new recommendation engine.
func NewRecommendService() *RecommendService {
	return &RecommendService{}
}

// Score counts how many of the business tags are members of the user's
// liked-tag set, and records the matching subset for display.
func (s *RecommendService) Score(business *model.Business, userTags map[string]struct{}) *model.ScoredBusiness {
	matching := helper.IntersectTags(business.Tags, userTags)
	return &model.ScoredBusiness{
		Business:     business,
		MatchScore:   len(matching),
		MatchingTags: matching,
	}
}

// Rank scores the whole catalog, keeps only positive scores, stable-sorts
// descending (ties keep catalog order) and returns the top limit entries.
func (s *RecommendService) Rank(businesses []*model.Business, userTags map[string]struct{}, limit int) []*model.ScoredBusiness {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var scored []*model.ScoredBusiness
	for _, business := range businesses {
		result := s.Score(business, userTags)
		if result.MatchScore > 0 {
			scored = append(scored, result)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// RankForProfile is a convenience wrapper taking the profile directly.
func (s *RecommendService) RankForProfile(businesses []*model.Business, profile *model.UserProfile, limit int) []*model.ScoredBusiness {
	return s.Rank(businesses, profile.LikedTagSet(), limit)
}
