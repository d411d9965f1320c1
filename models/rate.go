package models

import "math"

// RateEnvelope is the timestamped hourly-rate value stored under the
// token-scoped key. When both a username-keyed rate and a token-keyed
// envelope exist, the envelope wins: it survives device changes because the
// token is the durable identifier.
type RateEnvelope struct {
	// Rate is the hourly pay rate. Finite and non-negative.
	Rate float64 `json:"rate"`

	// Timestamp is when the rate was saved, in milliseconds since epoch.
	Timestamp int64 `json:"timestamp"`
}

// ValidRate reports whether v is usable as an hourly rate.
func ValidRate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
