package model

// UserProfile accumulates the positive swipe signal for a single user. Liked
// tags behave as a set (duplicates collapse on merge); the liked business and
// product name histories are plain lists and may contain repeats.
type UserProfile struct {
	UID                string   `json:"uid" db:"uid"`
	LikedTags          []string `json:"liked_tags" db:"liked_tags"`
	LikedBusinessNames []string `json:"liked_business_names" db:"liked_business_names"`
	LikedProductNames  []string `json:"liked_product_names" db:"liked_product_names"`
}

// NewUserProfile creates an empty profile for the given user.
func NewUserProfile(uid string) *UserProfile {
	return &UserProfile{
		UID:                uid,
		LikedTags:          []string{},
		LikedBusinessNames: []string{},
		LikedProductNames:  []string{},
	}
}

// LikedTagSet returns the liked tags as a membership set.
func (p *UserProfile) LikedTagSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.LikedTags))
	for _, tag := range p.LikedTags {
		set[tag] = struct{}{}
	}
	return set
}

// MergeLikedTags unions the given tags into the liked-tag set, preserving
// insertion order for tags seen for the first time.
func (p *UserProfile) MergeLikedTags(tags []string) {
	seen := p.LikedTagSet()
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		p.LikedTags = append(p.LikedTags, tag)
	}
}

// RecordLike applies a single "like" action: the business tags merge into
// the liked-tag set and the business/product identities append to the
// history lists. This is the sole write path feeding future scoring passes.
func (p *UserProfile) RecordLike(business *Business, product *Product) {
	if business != nil {
		p.MergeLikedTags(business.Tags)
		p.LikedBusinessNames = append(p.LikedBusinessNames, business.Name)
	}
	if product != nil {
		p.LikedProductNames = append(p.LikedProductNames, product.Name)
	}
}
