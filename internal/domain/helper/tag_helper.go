package helper

import (
	"math"
	"strings"

	"LocalLoop-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance computes the distance between two points in km.
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// TagSet converts a tag slice to a membership set. Tags are kept verbatim;
// the caller decides whether to normalize first.
func TagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// IntersectTags returns the tags of the business present in the given set,
// in the business's declaration order.
func IntersectTags(tags []string, set map[string]struct{}) []string {
	var matching []string
	for _, tag := range tags {
		if _, ok := set[tag]; ok {
			matching = append(matching, tag)
		}
	}
	return matching
}

// HasExactTag checks case-insensitively whether any tag equals one of the
// given synonyms.
func HasExactTag(tags []string, synonyms []string) bool {
	for _, tag := range tags {
		lowered := strings.ToLower(strings.TrimSpace(tag))
		for _, syn := range synonyms {
			if lowered == syn {
				return true
			}
		}
	}
	return false
}

// HasSubstringTag checks case-insensitively whether any tag contains one of
// the given terms as a substring.
func HasSubstringTag(tags []string, terms []string) bool {
	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		for _, term := range terms {
			if strings.Contains(lowered, term) {
				return true
			}
		}
	}
	return false
}

// NormalizeAddress builds the geocode cache key: trimmed and lower-cased.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
