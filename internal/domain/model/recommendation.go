package model

// ScoredBusiness is the ephemeral result of a recommendation pass: the
// business plus its tag-overlap score against the user's liked tags. It is
// recomputed on every pass and never persisted.
type ScoredBusiness struct {
	Business     *Business `json:"business"`
	MatchScore   int       `json:"match_score"`
	MatchingTags []string  `json:"matching_tags"`
}

// Geocode outcome values reported per business by the batch geocoder.
const (
	GeocodeOutcomeSuccess  = "success"  // resolved by a network provider
	GeocodeOutcomeCached   = "cached"   // served from the session cache
	GeocodeOutcomeFallback = "fallback" // resolved by the gazetteer
	GeocodeOutcomeFailed   = "failed"   // no provider and no gazetteer match
)

// GeocodeResult is the per-business settlement record of a batch geocode.
type GeocodeResult struct {
	BusinessID string  `json:"business_id"`
	Address    string  `json:"address"`
	Location   *LatLng `json:"location,omitempty"`
	Outcome    string  `json:"outcome"`
}

// GeocodeSummary aggregates a batch geocode run for observability.
type GeocodeSummary struct {
	Total    int             `json:"total"`
	Success  int             `json:"success"`
	Cached   int             `json:"cached"`
	Fallback int             `json:"fallback"`
	Failed   int             `json:"failed"`
	Results  []GeocodeResult `json:"results"`
}

// Count tallies one settlement outcome into the summary.
func (s *GeocodeSummary) Count(result GeocodeResult) {
	s.Total++
	switch result.Outcome {
	case GeocodeOutcomeSuccess:
		s.Success++
	case GeocodeOutcomeCached:
		s.Cached++
	case GeocodeOutcomeFallback:
		s.Fallback++
	case GeocodeOutcomeFailed:
		s.Failed++
	}
	s.Results = append(s.Results, result)
}
