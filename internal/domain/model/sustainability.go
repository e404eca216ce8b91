package model

// SustainabilityBucket identifiers used by the Sustainable listing view.
const (
	BucketGreenCertified   = "green_certified"
	BucketLocallySourced   = "locally_sourced"
	BucketZeroWaste        = "zero_waste"
	BucketOtherSustainable = "other_sustainable"
)

// BucketNameMap maps bucket IDs to display names.
var BucketNameMap = map[string]string{
	BucketGreenCertified:   "Green Certified",
	BucketLocallySourced:   "Locally Sourced",
	BucketZeroWaste:        "Zero Waste",
	BucketOtherSustainable: "Other Sustainable",
}

// GreenCertifiedSynonyms are the exact (case-insensitive) tag spellings for
// the green-certified bucket.
var GreenCertifiedSynonyms = []string{
	"green certified",
	"green-certified",
	"certified green",
}

// LocallySourcedSynonyms are the exact tag spellings for the locally-sourced
// bucket.
var LocallySourcedSynonyms = []string{
	"locally sourced",
	"locally-sourced",
	"local sourced",
}

// ZeroWasteSynonyms are the exact tag spellings for the zero-waste bucket.
var ZeroWasteSynonyms = []string{
	"zero waste",
	"zero-waste",
	"zero waste certified",
}

// BroadSustainableTerms feed the catch-all bucket. Matching is substring,
// case-insensitive, intentionally broader than the exact buckets.
var BroadSustainableTerms = []string{
	"organic",
	"eco",
	"sustainable",
	"green",
	"local",
	"farm",
	"artisan",
	"eco-friendly",
	"natural",
}

// GetBucketDisplayName returns the display name for a bucket ID.
func GetBucketDisplayName(bucket string) string {
	if name, ok := BucketNameMap[bucket]; ok {
		return name
	}
	return bucket
}

// GetExactBuckets returns the exact-match buckets in evaluation order. The
// order is fixed: a business lands in the first bucket it qualifies for.
func GetExactBuckets() []string {
	return []string{
		BucketGreenCertified,
		BucketLocallySourced,
		BucketZeroWaste,
	}
}

// GetAllBuckets returns every bucket in evaluation order.
func GetAllBuckets() []string {
	return append(GetExactBuckets(), BucketOtherSustainable)
}

// GetBucketSynonyms returns the exact synonym set for an exact-match bucket.
func GetBucketSynonyms(bucket string) []string {
	switch bucket {
	case BucketGreenCertified:
		return GreenCertifiedSynonyms
	case BucketLocallySourced:
		return LocallySourcedSynonyms
	case BucketZeroWaste:
		return ZeroWasteSynonyms
	default:
		return nil
	}
}
