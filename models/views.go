package models

// LeaderboardEntry is a read-only projection of a LogRecord used for ranking
// display. Derived, never stored.
type LeaderboardEntry struct {
	Username  string  `json:"username"`
	Duration  int64   `json:"duration"`
	Earnings  float64 `json:"earnings"`
	City      string  `json:"city,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// DerivedViews is everything the display layer needs, computed in one pass
// from a freshly fetched log snapshot and the current identity.
type DerivedViews struct {
	// OwnLogs are the current user's logs, newest first. Not capped; the
	// display cap is applied by the caller.
	OwnLogs []LogRecord

	// LastKnownCity is the city of the most recent own log with a non-blank
	// city, or "" when none exists.
	LastKnownCity string

	// GlobalTop is the top-N ranking of all logs by duration.
	GlobalTop []LeaderboardEntry

	// LocalTop is the top-N ranking restricted to LastKnownCity. Empty when
	// the user has no known city.
	LocalTop []LeaderboardEntry
}
