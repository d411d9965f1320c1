package store

import (
	"context"
	"fmt"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// the [KeyValue] state store; additional repositories can be added here as
// the feature set grows.
type ClientStorages struct {
	// State is the SQLite-backed key/value store for identity and rate
	// state persisted locally on the client device.
	State KeyValue
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates the local state schema via [NewLocalStateStore].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [KeyValue] store.
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	state, err := NewLocalStateStore(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("local state schema error: %w", err)
	}

	return &ClientStorages{
		State: state,
	}, nil
}
