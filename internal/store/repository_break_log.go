package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/models"
)

// breakLogRepository is the PostgreSQL-backed implementation of
// [BreakLogRepository]. It executes all break-log operations directly against
// the "break_logs" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (username, record id, etc.).
type breakLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBreakLogRepository constructs a [BreakLogRepository] backed by the
// provided database connection and logger.
func NewBreakLogRepository(db *DB, logger *logger.Logger) BreakLogRepository {
	return &breakLogRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLog inserts the record and returns a copy carrying the assigned ID.
// The record itself is never modified: break logs are immutable once created
// and the caller may still hold references to the original value.
func (b *breakLogRepository) SaveLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	log := logger.FromContext(ctx)

	row := b.DB.QueryRowContext(ctx, saveBreakLog,
		record.Username,
		record.Token,
		record.Duration,
		record.Earnings,
		record.CurrentRate,
		record.Timestamp,
		record.Lat,
		record.Lng,
		nullableString(record.City),
		string(record.LocationMethod),
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		log.Err(err).
			Str("func", "breakLogRepository.SaveLog").
			Str("username", record.Username).
			Msg("failed to insert break log")
		if err == sql.ErrNoRows {
			return models.LogRecord{}, ErrLogNotSaved
		}
		return models.LogRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	record.ID = id
	return record, nil
}

// GetLogs lists break records matching the filter, newest first.
//
// Returns an empty slice when no records are found.
func (b *breakLogRepository) GetLogs(ctx context.Context, filter LogFilter) ([]models.LogRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLogsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "breakLogRepository.GetLogs").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "breakLogRepository.GetLogs").
			Str("city", filter.City).
			Msg("failed to execute query for listing break logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.LogRecord, 0, 50)

	for rows.Next() {
		var (
			record models.LogRecord
			city   sql.NullString
			method string
		)

		scanErr := rows.Scan(
			&record.ID,
			&record.Username,
			&record.Token,
			&record.Duration,
			&record.Earnings,
			&record.CurrentRate,
			&record.Timestamp,
			&record.Lat,
			&record.Lng,
			&city,
			&method,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "breakLogRepository.GetLogs").
				Msg("failed to scan break log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		record.City = city.String
		record.LocationMethod = models.LocationMethod(method)

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "breakLogRepository.GetLogs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
