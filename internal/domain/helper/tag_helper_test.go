package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LocalLoop-App/internal/domain/model"
)

func TestIntersectTags(t *testing.T) {
	set := TagSet([]string{"Organic", "Local", "Vegan"})

	t.Run("matches keep declaration order", func(t *testing.T) {
		matching := IntersectTags([]string{"Vegan", "Bakery", "Organic"}, set)
		assert.Equal(t, []string{"Vegan", "Organic"}, matching)
	})

	t.Run("membership is case-sensitive", func(t *testing.T) {
		assert.Empty(t, IntersectTags([]string{"organic", "LOCAL"}, set))
	})
}

func TestHasExactTag(t *testing.T) {
	synonyms := []string{"zero waste", "zero-waste"}

	assert.True(t, HasExactTag([]string{"Zero Waste"}, synonyms))
	assert.True(t, HasExactTag([]string{"  zero-waste  "}, synonyms))
	assert.False(t, HasExactTag([]string{"zero waste store"}, synonyms), "exact match must not accept supersets")
}

func TestHasSubstringTag(t *testing.T) {
	terms := []string{"organic", "eco"}

	assert.True(t, HasSubstringTag([]string{"Organic Produce"}, terms))
	assert.True(t, HasSubstringTag([]string{"eco-friendly"}, terms))
	assert.False(t, HasSubstringTag([]string{"hardware"}, terms))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "123 lakeshore rd w, oakville, on", NormalizeAddress("  123 Lakeshore Rd W, Oakville, ON "))
	assert.Equal(t, "", NormalizeAddress("   "))
}

func TestHaversineDistance(t *testing.T) {
	oakville := model.LatLng{Lat: 43.4675, Lng: -79.6877}
	toronto := model.LatLng{Lat: 43.6532, Lng: -79.3832}

	assert.Equal(t, 0.0, HaversineDistance(oakville, oakville))

	distance := HaversineDistance(oakville, toronto)
	assert.InDelta(t, 30.0, distance, 5.0, "Oakville to downtown Toronto is roughly 30km")
}
