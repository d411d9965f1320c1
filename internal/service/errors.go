package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrNoRateSet is returned when a break is started or submitted without a
	// configured pay rate.
	ErrNoRateSet = errors.New("no pay rate set")

	// ErrNoIdentity is returned when a session operation requires an identity
	// and none exists yet.
	ErrNoIdentity = errors.New("no identity")

	// ErrSubmitInFlight is returned when a submission is attempted while a
	// previous one has not settled yet.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrNotAwaitingLocation is returned when a submit entry point is called
	// outside the location prompt state.
	ErrNotAwaitingLocation = errors.New("no stopped break awaiting location")

	// ErrMissingCity is returned when a manual location submission carries a
	// blank city.
	ErrMissingCity = errors.New("city is required for manual entry")
)
