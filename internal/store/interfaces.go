package store

import (
	"context"

	"github.com/mkarev/go-break-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BreakLogRepository is the server-side repository for persisted break
// entries. Records are append-only: there is no update or delete operation.
type BreakLogRepository interface {
	// SaveLog inserts the record and returns it with the assigned ID.
	SaveLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error)

	// GetLogs lists records matching the filter, newest first.
	GetLogs(ctx context.Context, filter LogFilter) ([]models.LogRecord, error)
}

// ProfileRepository stores the token-keyed username/rate mirror.
type ProfileRepository interface {
	// SaveProfile upserts the profile by token.
	SaveProfile(ctx context.Context, profile models.Profile) error

	// GetProfile returns the profile for a token, or [ErrProfileNotFound].
	GetProfile(ctx context.Context, token string) (models.Profile, error)
}

// LogFilter narrows a GetLogs listing. Zero value means "everything".
type LogFilter struct {
	// City, when non-empty, restricts results to records with this city
	// (case-insensitive).
	City string

	// Limit, when positive, caps the number of returned records.
	Limit uint64
}
