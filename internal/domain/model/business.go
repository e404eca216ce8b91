package model

// LatLng is the basic latitude/longitude pair used across the catalog and
// the geocoding resolver.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Business lifecycle status values. Only approved businesses are visible in
// the public catalog.
const (
	BusinessStatusPending  = "pending"
	BusinessStatusApproved = "approved"
	BusinessStatusRejected = "rejected"
)

// Business represents an approved local business listing.
type Business struct {
	ID          string   `json:"id" db:"id"`                         // unique listing ID
	Name        string   `json:"name" db:"name"`                     // display name
	Description string   `json:"description" db:"description"`       // free-text description
	Category    string   `json:"category" db:"category"`             // primary category
	Address     string   `json:"address" db:"address"`               // free-text postal address
	Location    *LatLng  `json:"location,omitempty" db:"location"`   // resolved coordinates (NULLABLE)
	Tags        []string `json:"tags" db:"tags"`                     // free-text labels for matching
	Rating      float64  `json:"rating" db:"rating"`                 // average rating
	Website     *string  `json:"website,omitempty" db:"website"`     // storefront URL (NULLABLE)
	OwnerID     *string  `json:"owner_id,omitempty" db:"owner_id"`   // claiming owner (NULLABLE)
	Status      string   `json:"status" db:"status"`                 // lifecycle status
}

// HasLocation checks whether the business carries well-formed coordinates.
func (b *Business) HasLocation() bool {
	return b.Location != nil
}

// ToLatLng returns the business coordinates, or the zero value when the
// location is unknown.
func (b *Business) ToLatLng() LatLng {
	if b.Location != nil {
		return *b.Location
	}
	return LatLng{}
}

// GetWebsite returns the website URL, or an empty string when unset.
func (b *Business) GetWebsite() string {
	if b.Website != nil {
		return *b.Website
	}
	return ""
}

// SetWebsite sets the website URL (empty string leaves it nil).
func (b *Business) SetWebsite(url string) {
	if url != "" {
		b.Website = &url
	}
}

// IsClaimed checks whether an owner has already claimed the listing.
func (b *Business) IsClaimed() bool {
	return b.OwnerID != nil && *b.OwnerID != ""
}

// NewLocation builds a LatLng only from a well-formed numeric pair; a
// malformed pair is dropped rather than rejected.
func NewLocation(lat, lng float64) *LatLng {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil
	}
	if lat == 0 && lng == 0 {
		return nil
	}
	return &LatLng{Lat: lat, Lng: lng}
}
