package service

import (
	"context"

	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/models"
)

// LogService is the server-side application service over the break-log and
// profile repositories.
type LogService interface {
	// SubmitLog normalises and persists a finished break record and returns
	// the stored record with its assigned ID.
	SubmitLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error)

	// ListLogs returns records matching the filter, newest first.
	ListLogs(ctx context.Context, filter store.LogFilter) ([]models.LogRecord, error)

	// SaveProfile upserts the token-keyed profile mirror.
	SaveProfile(ctx context.Context, profile models.Profile) error

	// GetProfile returns the profile for a token, or
	// [store.ErrProfileNotFound].
	GetProfile(ctx context.Context, token string) (models.Profile, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LogServiceWrapper defines middleware composition for LogService.
// Implementations wrap an existing LogService to add behavior such as
// logging or validating.
type LogServiceWrapper interface {
	Wrap(LogService) LogService // returns a decorated LogService applying additional behavior
}
