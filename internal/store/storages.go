package store

import (
	"context"
	"fmt"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/migrations"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	// BreakLogRepository is the PostgreSQL-backed repository for break
	// records.
	BreakLogRepository BreakLogRepository

	// ProfileRepository is the PostgreSQL-backed repository for token-keyed
	// profiles.
	ProfileRepository ProfileRepository
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection using the DSN from cfg.DB.
//  2. Runs pending schema migrations via [migrations.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		BreakLogRepository: NewBreakLogRepository(db, logger),
		ProfileRepository:  NewProfileRepository(db, logger),
	}, nil
}
