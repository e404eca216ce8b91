package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	t.Run("numeric document values pass through", func(t *testing.T) {
		assert.Equal(t, 12.5, ParsePrice(12.5))
		assert.Equal(t, 7.0, ParsePrice(int64(7)))
		assert.Equal(t, 3.0, ParsePrice(3))
	})

	t.Run("currency-formatted strings are cleaned", func(t *testing.T) {
		assert.Equal(t, 12.5, ParsePrice("$12.50"))
		assert.Equal(t, 1200.0, ParsePrice("1,200"))
		assert.Equal(t, 1250.75, ParsePrice(" $1,250.75 "))
	})

	t.Run("unparseable values fall back to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ParsePrice("call for pricing"))
		assert.Equal(t, 0.0, ParsePrice(""))
		assert.Equal(t, 0.0, ParsePrice(nil))
		assert.Equal(t, 0.0, ParsePrice(true))
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("well-formed pair builds a location", func(t *testing.T) {
		location := NewLocation(43.4675, -79.6877)
		assert.NotNil(t, location)
		assert.Equal(t, 43.4675, location.Lat)
	})

	t.Run("out-of-range and zero pairs are dropped", func(t *testing.T) {
		assert.Nil(t, NewLocation(91, 0))
		assert.Nil(t, NewLocation(0, -181))
		assert.Nil(t, NewLocation(0, 0))
	})
}

func TestBusiness_IsClaimed(t *testing.T) {
	owner := "owner-1"
	empty := ""

	assert.False(t, (&Business{}).IsClaimed())
	assert.False(t, (&Business{OwnerID: &empty}).IsClaimed())
	assert.True(t, (&Business{OwnerID: &owner}).IsClaimed())
}
