package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObfuscate_StaysWithinRadius(t *testing.T) {
	const (
		lat    = 59.9139
		lng    = 10.7522
		radius = 500.0
	)

	maxDegrees := radius / earthRadiusMeters * 180 / math.Pi
	maxLngDegrees := maxDegrees / math.Cos(lat*math.Pi/180)

	for i := 0; i < 100; i++ {
		gotLat, gotLng := Obfuscate(lat, lng, radius)

		assert.InDelta(t, lat, gotLat, maxDegrees)
		assert.InDelta(t, lng, gotLng, maxLngDegrees)
	}
}

func TestObfuscate_ZeroRadiusFallsBackToDefault(t *testing.T) {
	const lat, lng = 45.0, 9.0

	maxDegrees := float64(DefaultObfuscationRadiusMeters) / earthRadiusMeters * 180 / math.Pi
	maxLngDegrees := maxDegrees / math.Cos(lat*math.Pi/180)

	gotLat, gotLng := Obfuscate(lat, lng, 0)

	assert.InDelta(t, lat, gotLat, maxDegrees)
	assert.InDelta(t, lng, gotLng, maxLngDegrees)
}

func TestObfuscate_ProducesDifferentOffsets(t *testing.T) {
	const lat, lng = 59.9139, 10.7522

	lat1, lng1 := Obfuscate(lat, lng, 500)
	lat2, lng2 := Obfuscate(lat, lng, 500)

	// vanishingly unlikely to collide with a real random source
	assert.False(t, lat1 == lat2 && lng1 == lng2)
}
