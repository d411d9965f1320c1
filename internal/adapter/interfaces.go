// Package adapter provides transport-layer abstractions for communicating
// with the shared break-log store.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrBadRequest] for 400, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/mkarev/go-break-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the break-log
// store. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SubmitLog sends a finished break record to the store and returns the
	// stored record carrying the assigned ID. The submitted record is never
	// mutated, so a failed submission can be retried with the same value.
	SubmitLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error)

	// ListLogs fetches the full log snapshot. The server orders records
	// newest first on a best-effort basis; callers must not rely on it and
	// should re-sort defensively.
	ListLogs(ctx context.Context) ([]models.LogRecord, error)

	// SaveProfile upserts the token-keyed username/rate mirror.
	SaveProfile(ctx context.Context, profile models.Profile) error

	// GetProfile fetches the profile mirror for a token. Returns
	// [ErrNotFound] when the server has no profile for it.
	GetProfile(ctx context.Context, token string) (models.Profile, error)

	// Version fetches the server build version.
	Version(ctx context.Context) (string, error)
}
