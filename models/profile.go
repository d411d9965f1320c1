package models

// Profile is the token-keyed mirror of a user's display name and rate kept on
// the server so that a recovered device can look the rate up again. The store
// performs a plain upsert by token; no validation beyond field presence.
type Profile struct {
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Rate     float64 `json:"rate"`
}
