package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
)

// localStateStore is the SQLite-backed implementation of [KeyValue]. All
// state lives in a single "local_state" table keyed by string.
type localStateStore struct {
	*DB
	logger *logger.Logger
}

func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// NewLocalStateStore constructs a [KeyValue] over the given SQLite
// connection, creating the backing table if it does not exist yet.
func NewLocalStateStore(ctx context.Context, db *DB, logger *logger.Logger) (KeyValue, error) {
	if _, err := db.ExecContext(ctx, createLocalStateTable); err != nil {
		logger.Err(err).Str("func", "NewLocalStateStore").Msg("failed to create local state table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &localStateStore{
		DB:     db,
		logger: logger,
	}, nil
}

func (s *localStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, getLocalStateValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		s.logger.Err(err).
			Str("func", "localStateStore.Get").
			Str("key", key).
			Msg("failed to read local state value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *localStateStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.DB.ExecContext(ctx, setLocalStateValue, key, value)
	if err != nil {
		s.logger.Err(err).
			Str("func", "localStateStore.Set").
			Str("key", key).
			Msg("failed to write local state value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStateStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, deleteLocalStateValue, key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "localStateStore.Delete").
			Str("key", key).
			Msg("failed to delete local state value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
