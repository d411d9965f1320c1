package validators

import (
	"context"
	"math"

	"github.com/mkarev/go-break-ledger/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldIdentity       = "identity"
	FieldDuration       = "duration"
	FieldEarnings       = "earnings"
	FieldRate           = "rate"
	FieldCoordinates    = "coordinates"
	FieldLocationMethod = "location_method"

	FieldProfileToken    = "profile_token"
	FieldProfileUsername = "profile_username"
	FieldProfileRate     = "profile_rate"
)

// LogRecordValidator validates inbound break records and profiles before they
// reach the store.
type LogRecordValidator struct {
}

func NewLogRecordValidator() Validator {
	return &LogRecordValidator{}
}

func (v *LogRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LogRecord:
		return v.validateLogRecord(ctx, value, fields...)
	case *models.LogRecord:
		return v.validateLogRecord(ctx, *value, fields...)

	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		return v.validateProfile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LogRecordValidator) validateLogRecord(_ context.Context, record models.LogRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldDuration, FieldEarnings, FieldRate, FieldCoordinates, FieldLocationMethod}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if record.Username == "" || record.Token == "" {
				return ErrMissingIdentity
			}
		case FieldDuration:
			if record.Duration < 0 {
				return ErrInvalidDuration
			}
		case FieldEarnings:
			if !isFiniteNonNegative(record.Earnings) {
				return ErrInvalidEarnings
			}
		case FieldRate:
			if !isFiniteNonNegative(record.CurrentRate) {
				return ErrInvalidRate
			}
		case FieldCoordinates:
			if (record.Lat == nil) != (record.Lng == nil) {
				return ErrOneSidedCoordinates
			}
		case FieldLocationMethod:
			if !record.LocationMethod.Valid() {
				return ErrInvalidLocationMethod
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LogRecordValidator) validateProfile(_ context.Context, profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileToken, FieldProfileUsername, FieldProfileRate}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileToken:
			if profile.Token == "" {
				return ErrMissingProfileToken
			}
		case FieldProfileUsername:
			if profile.Username == "" {
				return ErrMissingProfileName
			}
		case FieldProfileRate:
			if !isFiniteNonNegative(profile.Rate) {
				return ErrInvalidRate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
