package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	saveBreakLog = `INSERT INTO break_logs (
			username,
			token,
			duration,
			earnings,
			current_rate,
			timestamp_ms,
			lat,
			lng,
			city,
			location_method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;`

	saveProfile = `INSERT INTO profiles (token, username, rate, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (token) DO UPDATE
		SET username = EXCLUDED.username,
		    rate = EXCLUDED.rate,
		    updated_at = NOW();`

	getProfileByToken = `SELECT token, username, rate
		FROM profiles
		WHERE token = $1;`
)

var breakLogColumns = []string{
	"id",
	"username",
	"token",
	"duration",
	"earnings",
	"current_rate",
	"timestamp_ms",
	"lat",
	"lng",
	"city",
	"location_method",
}

// buildGetLogsQuery builds the filtered listing query. The base query selects
// every record newest first; a non-empty City adds a case-insensitive match
// and a positive Limit caps the result set.
func buildGetLogsQuery(filter LogFilter) (string, []any, error) {
	builder := sq.Select(breakLogColumns...).
		From("break_logs").
		OrderBy("timestamp_ms DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.City != "" {
		builder = builder.Where("LOWER(city) = LOWER(?)", filter.City)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
