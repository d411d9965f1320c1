package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingIdentity       = errors.New("username and token are required")
	ErrInvalidDuration       = errors.New("duration must be a non-negative number of seconds")
	ErrInvalidEarnings       = errors.New("earnings must be a finite non-negative number")
	ErrInvalidRate           = errors.New("rate must be a finite non-negative number")
	ErrOneSidedCoordinates   = errors.New("lat and lng must both be present or both be absent")
	ErrInvalidLocationMethod = errors.New("unknown location method")
	ErrMissingProfileToken   = errors.New("profile token is required")
	ErrMissingProfileName    = errors.New("profile username is required")
)
