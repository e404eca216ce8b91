package service

import (
	"LocalLoop-App/internal/domain/helper"
	"LocalLoop-App/internal/domain/model"
)

// SustainabilityService partitions the catalog into the four sustainability
// buckets. Bucket tests run in fixed order and a business lands in the
// first bucket it qualifies for, so the exact-match buckets always take
// priority over the broad substring bucket.
type SustainabilityService struct{}

// NewSustainabilityService creates a new bucketing service.
func NewSustainabilityService() *SustainabilityService {
	return &SustainabilityService{}
}

// BucketFor returns the bucket ID for a business, or an empty string when
// the business is not sustainable at all.
func (s *SustainabilityService) BucketFor(business *model.Business) string {
	for _, bucket := range model.GetExactBuckets() {
		if helper.HasExactTag(business.Tags, model.GetBucketSynonyms(bucket)) {
			return bucket
		}
	}
	if helper.HasSubstringTag(business.Tags, model.BroadSustainableTerms) {
		return model.BucketOtherSustainable
	}
	return ""
}

// Categorize partitions the catalog into disjoint buckets keyed by bucket
// ID. A business appears in at most one bucket.
func (s *SustainabilityService) Categorize(businesses []*model.Business) map[string][]*model.Business {
	buckets := make(map[string][]*model.Business, len(model.GetAllBuckets()))
	for _, bucket := range model.GetAllBuckets() {
		buckets[bucket] = []*model.Business{}
	}
	for _, business := range businesses {
		if bucket := s.BucketFor(business); bucket != "" {
			buckets[bucket] = append(buckets[bucket], business)
		}
	}
	return buckets
}
