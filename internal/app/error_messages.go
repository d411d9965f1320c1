// Package app contains shared application-layer constants used across the
// break-ledger server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMissingIdentity is returned when a submitted record or profile lacks
	// the username or the token.
	MsgMissingIdentity = "username and token are required"

	// MsgInvalidDuration is returned when a submitted record carries a
	// negative duration.
	MsgInvalidDuration = "duration must be a non-negative number of seconds"

	// MsgInvalidNumericField is returned when earnings or rate is missing,
	// non-numeric, negative, or not finite.
	MsgInvalidNumericField = "earnings and rate must be finite non-negative numbers"

	// MsgOneSidedCoordinates is returned when exactly one of lat/lng is
	// present on a submitted record.
	MsgOneSidedCoordinates = "lat and lng must both be present or both be absent"

	// MsgProfileNotFound is returned when no profile exists for the requested
	// token.
	MsgProfileNotFound = "profile not found"

	// MsgRecoveryCodeNotFound is shown when a recovery code matches no stored
	// logs.
	MsgRecoveryCodeNotFound = "invalid code or no logs for this code"

	// MsgMethodNotAllowed is returned for unsupported HTTP methods on API
	// routes.
	MsgMethodNotAllowed = "method not allowed"
)
