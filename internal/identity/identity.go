// Package identity manages the local pseudonymous identity and its associated
// pay rate. The backing store is an injectable key/value capability; every
// persistence failure degrades to "value absent" so that a broken local store
// can never take the session down.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/models"
)

// Local state keys. The JSON identity object is the primary record; the
// single-field username/token keys are kept in sync for consistency with
// older layouts.
const (
	identityKey = "identity"
	usernameKey = "username"
	tokenKey    = "token"

	rateKeyPrefix       = "rate_"
	latestRateKeyPrefix = "latestRate_"
)

// ErrInvalidRate is returned by SaveRate when the rate is not a finite
// non-negative number.
var ErrInvalidRate = errors.New("rate must be a finite non-negative number")

// TokenGenerator produces recovery tokens. Satisfied by
// [utils.UUIDGenerator].
type TokenGenerator interface {
	Generate() string
}

// Store persists the identity and rate in a [store.KeyValue].
type Store struct {
	kv     store.KeyValue
	tokens TokenGenerator
	logger *logger.Logger

	// now is the clock used to timestamp rate envelopes.
	now func() time.Time
}

func NewStore(kv store.KeyValue, tokens TokenGenerator, logger *logger.Logger) *Store {
	return &Store{
		kv:     kv,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// GetOrCreate returns the persisted identity if one exists with both fields
// set, backfilling the single-field keys to stay consistent. Otherwise it
// returns the zero identity: creation is a separate explicit operation so
// that users who never opt in are not silently registered.
func (s *Store) GetOrCreate(ctx context.Context) models.Identity {
	raw, ok, err := s.kv.Get(ctx, identityKey)
	if err != nil {
		s.logger.Err(err).Str("func", "Store.GetOrCreate").Msg("failed to read identity, treating as absent")
		return models.Identity{}
	}

	if ok {
		var identity models.Identity
		if err := json.Unmarshal([]byte(raw), &identity); err != nil {
			s.logger.Err(err).Str("func", "Store.GetOrCreate").Msg("malformed stored identity, treating as absent")
		} else if !identity.IsZero() {
			s.syncLegacyKeys(ctx, identity)
			return identity
		}
	}

	// fall back to the single-field keys left by older layouts
	username, okU, errU := s.kv.Get(ctx, usernameKey)
	token, okT, errT := s.kv.Get(ctx, tokenKey)
	if errU != nil || errT != nil {
		return models.Identity{}
	}
	if okU && okT {
		identity := models.Identity{Username: username, Token: token}
		if !identity.IsZero() {
			s.persist(ctx, identity)
			return identity
		}
	}

	return models.Identity{}
}

// Generate produces a fresh pseudonymous identity and persists it
// immediately. Persistence failures are logged and swallowed: the in-memory
// identity is still returned so the session can continue.
func (s *Store) Generate(ctx context.Context) models.Identity {
	identity := models.Identity{
		Username: fmt.Sprintf("%s-%s", punNames[rand.Intn(len(punNames))], randomSuffix()),
		Token:    s.tokens.Generate(),
	}

	s.persist(ctx, identity)
	s.logger.Info().
		Str("func", "Store.Generate").
		Str("username", identity.Username).
		Msg("generated new identity")

	return identity
}

// Save persists a caller-supplied identity, typically after recovery.
// A one-sided identity is rejected silently (logged only): the caller is
// expected to pre-validate.
func (s *Store) Save(ctx context.Context, identity models.Identity) {
	if identity.IsZero() {
		s.logger.Error().
			Str("func", "Store.Save").
			Str("username", identity.Username).
			Msg("refusing to store one-sided identity")
		return
	}

	s.persist(ctx, identity)
}

// Clear erases the identity. The rate keys are deliberately left in place:
// rate deletion is the caller's separate responsibility, keyed by the old
// username.
func (s *Store) Clear(ctx context.Context) {
	for _, key := range []string{identityKey, usernameKey, tokenKey} {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.logger.Err(err).Str("func", "Store.Clear").Str("key", key).Msg("failed to delete identity key")
		}
	}
}

// SaveRate stores the hourly rate under both identity facets: a plain value
// under the username key and a timestamped envelope under the token key. The
// token-keyed envelope is authoritative on later reads because it survives
// device changes.
func (s *Store) SaveRate(ctx context.Context, identity models.Identity, rate float64) error {
	if !models.ValidRate(rate) {
		return ErrInvalidRate
	}
	if identity.IsZero() {
		return errors.New("cannot save rate without identity")
	}

	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := s.kv.Set(ctx, rateKeyPrefix+identity.Username, value); err != nil {
		s.logger.Err(err).Str("func", "Store.SaveRate").Msg("failed to store username-keyed rate")
	}

	envelope, err := json.Marshal(models.RateEnvelope{
		Rate:      rate,
		Timestamp: s.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode rate envelope: %w", err)
	}
	if err := s.kv.Set(ctx, latestRateKeyPrefix+identity.Token, string(envelope)); err != nil {
		s.logger.Err(err).Str("func", "Store.SaveRate").Msg("failed to store token-keyed rate envelope")
	}

	return nil
}

// ClearRate removes the username-keyed rate. Called on logout with the old
// username before the identity itself is cleared.
func (s *Store) ClearRate(ctx context.Context, username string) {
	if username == "" {
		return
	}
	if err := s.kv.Delete(ctx, rateKeyPrefix+username); err != nil {
		s.logger.Err(err).Str("func", "Store.ClearRate").Msg("failed to delete rate key")
	}
}

// Rate returns the stored hourly rate for the identity, or false if no rate
// has ever been saved. The token-keyed envelope wins when both copies exist;
// the username-keyed copy is resynced to match so the two cannot drift.
func (s *Store) Rate(ctx context.Context, identity models.Identity) (float64, bool) {
	if identity.IsZero() {
		return 0, false
	}

	raw, ok, err := s.kv.Get(ctx, latestRateKeyPrefix+identity.Token)
	if err == nil && ok {
		var envelope models.RateEnvelope
		if jsonErr := json.Unmarshal([]byte(raw), &envelope); jsonErr != nil {
			s.logger.Err(jsonErr).Str("func", "Store.Rate").Msg("malformed rate envelope, falling back to username key")
		} else if models.ValidRate(envelope.Rate) {
			s.resyncUsernameRate(ctx, identity.Username, envelope.Rate)
			return envelope.Rate, true
		}
	}

	raw, ok, err = s.kv.Get(ctx, rateKeyPrefix+identity.Username)
	if err != nil || !ok {
		return 0, false
	}

	rate, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil || !models.ValidRate(rate) {
		s.logger.Error().Str("func", "Store.Rate").Str("value", raw).Msg("malformed stored rate, treating as unset")
		return 0, false
	}

	return rate, true
}

func (s *Store) persist(ctx context.Context, identity models.Identity) {
	payload, err := json.Marshal(identity)
	if err != nil {
		s.logger.Err(err).Str("func", "Store.persist").Msg("failed to encode identity")
		return
	}

	if err := s.kv.Set(ctx, identityKey, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "Store.persist").Msg("failed to store identity")
	}
	s.syncLegacyKeys(ctx, identity)
}

func (s *Store) syncLegacyKeys(ctx context.Context, identity models.Identity) {
	if err := s.kv.Set(ctx, usernameKey, identity.Username); err != nil {
		s.logger.Err(err).Str("func", "Store.syncLegacyKeys").Msg("failed to sync username key")
	}
	if err := s.kv.Set(ctx, tokenKey, identity.Token); err != nil {
		s.logger.Err(err).Str("func", "Store.syncLegacyKeys").Msg("failed to sync token key")
	}
}

func (s *Store) resyncUsernameRate(ctx context.Context, username string, rate float64) {
	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := s.kv.Set(ctx, rateKeyPrefix+username, value); err != nil {
		s.logger.Err(err).Str("func", "Store.resyncUsernameRate").Msg("failed to resync username-keyed rate")
	}
}

func randomSuffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
