package models

import "strings"

// Identity is the pseudonymous (username, token) pair that identifies a user
// without any form of authentication. The token is the durable recovery
// secret; the username is a display pseudonym that may change over time while
// the token stays the same (see recovery).
//
// Identity is a compound key: records must always be matched on BOTH fields.
// Filtering by username alone is incorrect because usernames are not globally
// unique across recovery events.
type Identity struct {
	// Username is the display pseudonym, e.g. "RoyalFlush-x7fq".
	Username string `json:"username"`

	// Token is the recovery secret (a UUID). It must never be derived from
	// the username and is the only way to re-associate a new device with
	// prior logs.
	Token string `json:"token"`
}

// Equal reports whether both facets of the compound key match.
func (i Identity) Equal(other Identity) bool {
	return i.Username == other.Username && i.Token == other.Token
}

// IsZero reports whether the identity is absent. A well-formed identity has
// both fields non-empty; a one-sided identity is treated as absent.
func (i Identity) IsZero() bool {
	return strings.TrimSpace(i.Username) == "" || strings.TrimSpace(i.Token) == ""
}
