package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(38.7139, -9.1394, 38.7139, -9.1394))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(38.7139, -9.1394, 41.1496, -8.6109)
		d2 := HaversineDistance(41.1496, -8.6109, 38.7139, -9.1394)
		assert.Equal(t, d1, d2)
	})

	t.Run("lisbon to porto is roughly 274 km", func(t *testing.T) {
		d := HaversineDistance(38.7139, -9.1394, 41.1496, -8.6109)
		assert.InDelta(t, 274000, d, 5000)
	})
}

func TestWalkingMinutes(t *testing.T) {
	t.Run("rounds to nearest minute", func(t *testing.T) {
		assert.Equal(t, 2, WalkingMinutes(160, 80))
		assert.Equal(t, 2, WalkingMinutes(121, 80))
		assert.Equal(t, 1, WalkingMinutes(110, 80))
		assert.Equal(t, 0, WalkingMinutes(0, 80))
	})

	t.Run("non-positive speed yields zero", func(t *testing.T) {
		assert.Equal(t, 0, WalkingMinutes(500, 0))
		assert.Equal(t, 0, WalkingMinutes(500, -10))
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(38.7139, -9.1394))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}
