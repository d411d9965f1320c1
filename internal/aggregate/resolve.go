package aggregate

import (
	"errors"
	"sort"
	"strings"

	"github.com/mkarev/go-break-ledger/models"
)

// ErrTokenNotFound is returned by Resolve when no record carries the token.
var ErrTokenNotFound = errors.New("invalid code or no logs for this code")

// Resolve recovers the identity behind a recovery token from the full log
// snapshot. The username of the highest-timestamp record wins: a username may
// have implicitly changed over time while the token stayed the durable
// identifier, and recovery trusts the most recent one.
//
// This is the only place where the username side of an identity is derived
// from the token alone; everywhere else (username, token) is a compound key.
func Resolve(token string, logs []models.LogRecord) (models.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Identity{}, ErrTokenNotFound
	}

	matches := make([]models.LogRecord, 0, 4)
	for _, record := range logs {
		if record.Token == token {
			matches = append(matches, record)
		}
	}
	if len(matches) == 0 {
		return models.Identity{}, ErrTokenNotFound
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp > matches[j].Timestamp
	})

	return models.Identity{Username: matches[0].Username, Token: token}, nil
}
