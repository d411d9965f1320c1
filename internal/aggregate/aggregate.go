// Package aggregate derives display views from a flat break-log snapshot.
// Everything here is a pure function over explicit inputs: no storage, no
// network, no mutation of the input slice.
package aggregate

import (
	"sort"
	"strings"

	"github.com/mkarev/go-break-ledger/models"
)

// DefaultTopN is the leaderboard size used when the caller passes a
// non-positive N.
const DefaultTopN = 10

// OwnLogs returns the records owned by identity, newest first. Ownership is
// matched on the full compound key: a record matching only one of the two
// fields is excluded, because usernames are not globally unique across
// recovery events. Ties keep the original collection order (stable sort).
func OwnLogs(logs []models.LogRecord, identity models.Identity) []models.LogRecord {
	if identity.IsZero() {
		return []models.LogRecord{}
	}

	own := make([]models.LogRecord, 0, len(logs))
	for _, record := range logs {
		if record.Username == identity.Username && record.Token == identity.Token {
			own = append(own, record)
		}
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Timestamp > own[j].Timestamp
	})

	return own
}

// LastKnownCity returns the city of the most recent own log with a non-blank
// city. ownLogs must already be sorted newest first (see [OwnLogs]).
func LastKnownCity(ownLogs []models.LogRecord) string {
	for _, record := range ownLogs {
		if city := strings.TrimSpace(record.City); city != "" {
			return city
		}
	}
	return ""
}

// GlobalTop ranks all logs by duration, longest first, and returns the top n
// entries. Records with a negative duration are excluded. Ties keep the
// original collection order.
func GlobalTop(logs []models.LogRecord, n int) []models.LeaderboardEntry {
	return topByDuration(logs, n, func(models.LogRecord) bool { return true })
}

// LocalTop ranks logs whose city matches the given city (case-insensitive),
// longest first, and returns the top n entries. An empty city yields an empty
// leaderboard: when the user has no known city there is nothing meaningful to
// scope the ranking to.
func LocalTop(logs []models.LogRecord, city string, n int) []models.LeaderboardEntry {
	city = strings.TrimSpace(city)
	if city == "" {
		return []models.LeaderboardEntry{}
	}

	return topByDuration(logs, n, func(record models.LogRecord) bool {
		return strings.EqualFold(strings.TrimSpace(record.City), city)
	})
}

// Derive computes all display views in one pass over a freshly fetched
// snapshot. topN bounds both leaderboards; non-positive values fall back to
// [DefaultTopN].
func Derive(logs []models.LogRecord, identity models.Identity, topN int) models.DerivedViews {
	own := OwnLogs(logs, identity)
	city := LastKnownCity(own)

	return models.DerivedViews{
		OwnLogs:       own,
		LastKnownCity: city,
		GlobalTop:     GlobalTop(logs, topN),
		LocalTop:      LocalTop(logs, city, topN),
	}
}

func topByDuration(logs []models.LogRecord, n int, match func(models.LogRecord) bool) []models.LeaderboardEntry {
	if n <= 0 {
		n = DefaultTopN
	}

	entries := make([]models.LeaderboardEntry, 0, len(logs))
	for _, record := range logs {
		if record.Duration < 0 || !match(record) {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			Username:  record.Username,
			Duration:  record.Duration,
			Earnings:  record.Earnings,
			City:      record.City,
			Timestamp: record.Timestamp,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Duration > entries[j].Duration
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries
}
