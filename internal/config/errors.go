package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing log store base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidViewConfigs indicates invalid display-side limits
	// (for example, a negative display cap).
	ErrInvalidViewConfigs = errors.New("invalid views configuration")
	// ErrInvalidGeoConfigs indicates invalid geolocation settings
	// (for example, one of the fixed coordinates missing).
	ErrInvalidGeoConfigs = errors.New("invalid geo configuration")
)
