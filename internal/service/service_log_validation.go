package service

import (
	"context"
	"fmt"

	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/validators"
	"github.com/mkarev/go-break-ledger/models"
)

// logServiceValidationWrapper decorates a LogService with input validation.
// Requests that fail validation never reach the repositories.
type logServiceValidationWrapper struct {
	inner     LogService
	validator validators.Validator
}

// NewLogServiceValidationWrapper returns a LogServiceWrapper that validates
// records and profiles before delegating.
func NewLogServiceValidationWrapper(validator validators.Validator) LogServiceWrapper {
	return &logServiceValidationWrapper{validator: validator}
}

func (w *logServiceValidationWrapper) Wrap(inner LogService) LogService {
	return &logServiceValidationWrapper{inner: inner, validator: w.validator}
}

func (w *logServiceValidationWrapper) SubmitLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	// Old clients submit records without a location method.
	if record.LocationMethod == "" {
		record.LocationMethod = models.LocationUnknown
	}

	if err := w.validator.Validate(ctx, record); err != nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return w.inner.SubmitLog(ctx, record)
}

func (w *logServiceValidationWrapper) ListLogs(ctx context.Context, filter store.LogFilter) ([]models.LogRecord, error) {
	return w.inner.ListLogs(ctx, filter)
}

func (w *logServiceValidationWrapper) SaveProfile(ctx context.Context, profile models.Profile) error {
	if err := w.validator.Validate(ctx, profile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return w.inner.SaveProfile(ctx, profile)
}

func (w *logServiceValidationWrapper) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	if token == "" {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrMissingProfileToken)
	}

	return w.inner.GetProfile(ctx, token)
}
