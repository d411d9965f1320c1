package models

import "math"

// LocationMethod describes how the coordinates/city of a log record were
// obtained.
type LocationMethod string

const (
	// LocationAuto means raw device coordinates were used as-is.
	LocationAuto LocationMethod = "auto"
	// LocationAutoObfuscated means device coordinates were randomly offset
	// before storage.
	LocationAutoObfuscated LocationMethod = "auto_obfuscated"
	// LocationManual means the user typed the city by hand.
	LocationManual LocationMethod = "manual"
	// LocationSkipped means the user declined to attach a location.
	LocationSkipped LocationMethod = "skipped"
	// LocationUnknown is the fallback for records submitted without a method.
	LocationUnknown LocationMethod = "unknown"
)

// Valid reports whether m is one of the known location methods.
func (m LocationMethod) Valid() bool {
	switch m {
	case LocationAuto, LocationAutoObfuscated, LocationManual, LocationSkipped, LocationUnknown:
		return true
	}
	return false
}

// LogRecord is one immutable persisted break entry. Records are created by
// the client when a break finishes and are never mutated after submission;
// there is no delete operation.
type LogRecord struct {
	// ID is assigned by the store on submission. Zero for unsaved records.
	ID int64 `json:"id,omitempty"`

	// Username and Token are the owning identity. Both must be non-empty for
	// a record to be accepted by the store.
	Username string `json:"username"`
	Token    string `json:"token"`

	// Duration is the break length in whole seconds, >= 0.
	Duration int64 `json:"duration"`

	// Earnings is rate*duration/3600 rounded to 2 decimals at creation time.
	// It is an audit value: it is trusted as stored and never recomputed from
	// a possibly-changed live rate.
	Earnings float64 `json:"earnings"`

	// CurrentRate is the hourly rate in effect when the break was logged.
	CurrentRate float64 `json:"currentRate"`

	// Timestamp is the client-supplied break end time in milliseconds since
	// epoch. It is the sort key for "most recent".
	Timestamp int64 `json:"timestamp"`

	// Lat and Lng are optional obfuscated coordinates. Either both are set
	// or both are nil.
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	// City is an optional human-readable city name. It may be present even
	// when coordinates are not (manual entry).
	City string `json:"city,omitempty"`

	LocationMethod LocationMethod `json:"locationMethod"`
}

// HasCoordinates reports whether the record carries a usable coordinate pair.
func (r LogRecord) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

// RoundEarnings computes the canonical earnings value for a rate and
// duration: rate*duration/3600 rounded to 2 decimals.
func RoundEarnings(rate float64, durationSeconds int64) float64 {
	return math.Round(rate*float64(durationSeconds)/3600*100) / 100
}
