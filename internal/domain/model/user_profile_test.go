package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_MergeLikedTags(t *testing.T) {
	t.Run("tags union into an empty profile", func(t *testing.T) {
		profile := NewUserProfile("u1")

		profile.MergeLikedTags([]string{"Organic", "Local"})

		assert.Equal(t, []string{"Organic", "Local"}, profile.LikedTags)
	})

	t.Run("overlapping merge keeps one copy of each tag", func(t *testing.T) {
		profile := NewUserProfile("u1")

		profile.MergeLikedTags([]string{"Organic", "Local"})
		profile.MergeLikedTags([]string{"Local", "Fresh"})

		assert.Equal(t, []string{"Organic", "Local", "Fresh"}, profile.LikedTags)
	})

	t.Run("duplicates inside one merge collapse too", func(t *testing.T) {
		profile := NewUserProfile("u1")

		profile.MergeLikedTags([]string{"Organic", "Organic", "Local"})

		assert.Equal(t, []string{"Organic", "Local"}, profile.LikedTags)
	})
}

func TestUserProfile_RecordLike(t *testing.T) {
	business := &Business{ID: "b1", Name: "Kerr Street Market", Tags: []string{"Organic", "Local"}}
	product := &Product{ID: "p1", BusinessID: "b1", Name: "Sourdough Loaf"}

	t.Run("like merges tags and appends histories", func(t *testing.T) {
		profile := NewUserProfile("u1")

		profile.RecordLike(business, product)

		assert.Equal(t, []string{"Organic", "Local"}, profile.LikedTags)
		assert.Equal(t, []string{"Kerr Street Market"}, profile.LikedBusinessNames)
		assert.Equal(t, []string{"Sourdough Loaf"}, profile.LikedProductNames)
	})

	t.Run("histories tolerate repeats while tags stay a set", func(t *testing.T) {
		profile := NewUserProfile("u1")

		profile.RecordLike(business, product)
		profile.RecordLike(business, product)

		assert.Equal(t, []string{"Organic", "Local"}, profile.LikedTags)
		assert.Equal(t, []string{"Kerr Street Market", "Kerr Street Market"}, profile.LikedBusinessNames)
		assert.Equal(t, []string{"Sourdough Loaf", "Sourdough Loaf"}, profile.LikedProductNames)
	})

	t.Run("like without a product only touches business state", func(t *testing.T) {
		profile := NewUserProfile("u1")

		profile.RecordLike(business, nil)

		assert.Equal(t, []string{"Kerr Street Market"}, profile.LikedBusinessNames)
		assert.Empty(t, profile.LikedProductNames)
	})
}

func TestUserProfile_LikedTagSet(t *testing.T) {
	profile := NewUserProfile("u1")
	profile.MergeLikedTags([]string{"Organic", "Local"})

	set := profile.LikedTagSet()

	assert.Len(t, set, 2)
	assert.Contains(t, set, "Organic")
	assert.Contains(t, set, "Local")
	assert.NotContains(t, set, "organic", "set membership is case-sensitive")
}
