// Package geo provides the client-side location pipeline: acquiring a
// position, obfuscating it for privacy, and reverse-geocoding it to a city
// name. Every step degrades gracefully so that a missing or failing location
// source never blocks a break submission.
package geo

import (
	"math"
	"math/rand"
)

const earthRadiusMeters = 6378137

// DefaultObfuscationRadiusMeters is the maximum random offset applied to a
// position when no radius is configured.
const DefaultObfuscationRadiusMeters = 500

// Obfuscate applies a uniform random offset of up to maxOffsetMeters to the
// coordinate pair so that the exact position never leaves the process. A
// non-positive radius falls back to [DefaultObfuscationRadiusMeters].
func Obfuscate(lat, lng, maxOffsetMeters float64) (float64, float64) {
	if maxOffsetMeters <= 0 {
		maxOffsetMeters = DefaultObfuscationRadiusMeters
	}

	maxDegrees := maxOffsetMeters / earthRadiusMeters * 180 / math.Pi

	latOffset := (rand.Float64()*2 - 1) * maxDegrees
	lngOffset := (rand.Float64()*2 - 1) * maxDegrees / math.Cos(lat*math.Pi/180)

	return lat + latOffset, lng + lngOffset
}
