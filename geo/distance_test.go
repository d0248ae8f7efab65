package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, float64(0), Distance(25.0330, 121.5654, 25.0330, 121.5654))
}

func TestDistanceKnownPairs(t *testing.T) {
	// Taipei 101 to Taipei Main Station, roughly 4 km
	d := Distance(25.0330, 121.5654, 25.0478, 121.5170)
	assert.InDelta(t, 5.2, d, 0.5)

	// Taipei to Kaohsiung, roughly 300 km
	d = Distance(25.0330, 121.5654, 22.6273, 120.3014)
	assert.InDelta(t, 295, d, 10)
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Distance(40.7128, -74.0060, 51.5074, -0.1278)
	b := Distance(51.5074, -0.1278, 40.7128, -74.0060)
	assert.InDelta(t, a, b, 1e-9)

	// New York to London, roughly 5570 km
	assert.InDelta(t, 5570, a, 30)
}
