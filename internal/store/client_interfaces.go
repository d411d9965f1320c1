package store

import "context"

// KeyValue is the client-side persistent key/value state store. It holds the
// saved identity, the per-username rate keys, and the token-keyed rate
// envelopes between runs.
type KeyValue interface {
	// Get returns the value stored under key. The second return value is
	// false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
