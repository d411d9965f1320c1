package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetLogsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetLogsQuery(LogFilter{})
	require.NoError(t, err)

	// no filter means no args
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from break_logs")
	require.Contains(t, q, "order by timestamp_ms desc")

	// no filter means no WHERE and no LIMIT
	require.NotContains(t, q, "where")
	require.NotContains(t, q, "limit")

	// columns presence (subset / key columns)
	require.Contains(t, q, "id")
	require.Contains(t, q, "username")
	require.Contains(t, q, "duration")
	require.Contains(t, q, "earnings")
	require.Contains(t, q, "location_method")
}

func Test_buildGetLogsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     LogFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: empty filter selects everything",
			filter: LogFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				for _, col := range breakLogColumns {
					assert.True(t, strings.Contains(query, col),
						"query should contain column %q", col)
				}
				require.Empty(t, args)
			},
		},
		{
			name:   "success: city filter is case-insensitive",
			filter: LogFilter{City: "Rome"},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToUpper(query)

				assert.True(t, strings.Contains(q, "WHERE"))
				assert.True(t, strings.Contains(q, "LOWER(CITY) = LOWER($1)"))

				require.Len(t, args, 1)
				assert.Equal(t, "Rome", args[0])
			},
		},
		{
			name:   "success: limit caps result set",
			filter: LogFilter{Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.True(t, strings.Contains(strings.ToUpper(query), "LIMIT 10"))
				require.Empty(t, args)
			},
		},
		{
			name:   "success: city and limit combined",
			filter: LogFilter{City: "Oslo", Limit: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToUpper(query)

				assert.True(t, strings.Contains(q, "WHERE"))
				assert.True(t, strings.Contains(q, "LIMIT 5"))

				require.Len(t, args, 1)
				assert.Equal(t, "Oslo", args[0])
			},
		},
		{
			name:   "success: ordering always newest first",
			filter: LogFilter{City: "Rome", Limit: 3},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.True(t, strings.Contains(
					strings.ToUpper(query), "ORDER BY TIMESTAMP_MS DESC"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetLogsQuery(tt.filter)

			require.NoError(t, err)
			require.NotEmpty(t, query)

			if tt.checkQuery != nil {
				tt.checkQuery(t, query, args)
			}
		})
	}
}
