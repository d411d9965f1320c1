package identity

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
	delErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

type fakeTokens struct {
	tokens []string
	calls  int
}

func (f *fakeTokens) Generate() string {
	token := f.tokens[f.calls%len(f.tokens)]
	f.calls++
	return token
}

func newTestStore(kv *fakeKV, tokens ...string) *Store {
	if len(tokens) == 0 {
		tokens = []string{"token-1", "token-2"}
	}
	s := NewStore(kv, &fakeTokens{tokens: tokens}, logger.Nop())
	s.now = func() time.Time { return time.UnixMilli(1756600000000) }
	return s
}

func TestGetOrCreate_NoIdentity(t *testing.T) {
	store := newTestStore(newFakeKV())

	identity := store.GetOrCreate(context.Background())

	assert.True(t, identity.IsZero())
}

func TestGetOrCreate_ReturnsStoredIdentity(t *testing.T) {
	kv := newFakeKV()
	kv.data[identityKey] = `{"username":"RoyalFlush-x7fq","token":"tok-a"}`
	store := newTestStore(kv)

	identity := store.GetOrCreate(context.Background())

	assert.Equal(t, "RoyalFlush-x7fq", identity.Username)
	assert.Equal(t, "tok-a", identity.Token)

	// single-field keys are backfilled for consistency
	assert.Equal(t, "RoyalFlush-x7fq", kv.data[usernameKey])
	assert.Equal(t, "tok-a", kv.data[tokenKey])
}

func TestGetOrCreate_LegacyKeysBackfilled(t *testing.T) {
	kv := newFakeKV()
	kv.data[usernameKey] = "PooNinja-ab12"
	kv.data[tokenKey] = "tok-legacy"
	store := newTestStore(kv)

	identity := store.GetOrCreate(context.Background())

	assert.Equal(t, "PooNinja-ab12", identity.Username)
	assert.Equal(t, "tok-legacy", identity.Token)

	var persisted models.Identity
	require.NoError(t, json.Unmarshal([]byte(kv.data[identityKey]), &persisted))
	assert.True(t, identity.Equal(persisted))
}

func TestGetOrCreate_MalformedIdentityTreatedAsAbsent(t *testing.T) {
	kv := newFakeKV()
	kv.data[identityKey] = `{not json`
	store := newTestStore(kv)

	identity := store.GetOrCreate(context.Background())

	assert.True(t, identity.IsZero())
}

func TestGetOrCreate_OneSidedIdentityTreatedAsAbsent(t *testing.T) {
	kv := newFakeKV()
	kv.data[identityKey] = `{"username":"PooNinja-ab12","token":""}`
	store := newTestStore(kv)

	identity := store.GetOrCreate(context.Background())

	assert.True(t, identity.IsZero())
}

func TestGetOrCreate_StorageErrorTreatedAsAbsent(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("storage unavailable")
	store := newTestStore(kv)

	identity := store.GetOrCreate(context.Background())

	assert.True(t, identity.IsZero())
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	generated := store.Generate(ctx)

	first := store.GetOrCreate(ctx)
	second := store.GetOrCreate(ctx)

	assert.True(t, generated.Equal(first))
	assert.True(t, first.Equal(second))
}

func TestGenerate_ProducesWellFormedIdentity(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv, "tok-gen-1", "tok-gen-2")
	ctx := context.Background()

	first := store.Generate(ctx)
	second := store.Generate(ctx)

	require.NotEmpty(t, first.Username)
	require.NotEmpty(t, first.Token)
	assert.NotEqual(t, first.Token, second.Token)

	// format: PunName-suffix with a 4 character suffix
	parts := strings.Split(first.Username, "-")
	require.Len(t, parts, 2)
	assert.Contains(t, punNames, parts[0])
	assert.Len(t, parts[1], suffixLength)
}

func TestGenerate_PersistsImmediately(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)

	identity := store.Generate(context.Background())

	assert.Equal(t, identity.Username, kv.data[usernameKey])
	assert.Equal(t, identity.Token, kv.data[tokenKey])
	assert.NotEmpty(t, kv.data[identityKey])
}

func TestGenerate_PersistFailureStillReturnsIdentity(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("quota exceeded")
	store := newTestStore(kv)

	identity := store.Generate(context.Background())

	assert.False(t, identity.IsZero())
	assert.Empty(t, kv.data)
}

func TestSave_RejectsOneSidedIdentity(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)

	store.Save(context.Background(), models.Identity{Username: "PooNinja-ab12"})

	assert.Empty(t, kv.data)
}

func TestSave_PersistsRecoveredIdentity(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)

	recovered := models.Identity{Username: "LogLady-zz99", Token: "tok-recovered"}
	store.Save(context.Background(), recovered)

	fetched := store.GetOrCreate(context.Background())
	assert.True(t, recovered.Equal(fetched))
}

func TestClear_KeepsRateKeys(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	identity := store.Generate(ctx)
	require.NoError(t, store.SaveRate(ctx, identity, 15.0))

	store.Clear(ctx)

	assert.True(t, store.GetOrCreate(ctx).IsZero())
	assert.Contains(t, kv.data, rateKeyPrefix+identity.Username)
	assert.Contains(t, kv.data, latestRateKeyPrefix+identity.Token)
}

func TestSaveRate_InvalidRate(t *testing.T) {
	store := newTestStore(newFakeKV())
	ctx := context.Background()
	identity := models.Identity{Username: "u", Token: "t"}

	tests := []struct {
		name string
		rate float64
	}{
		{name: "negative", rate: -1},
		{name: "NaN", rate: math.NaN()},
		{name: "positive infinity", rate: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveRate(ctx, identity, tt.rate)
			assert.ErrorIs(t, err, ErrInvalidRate)
		})
	}
}

func TestSaveRate_StoresBothKeys(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()
	identity := models.Identity{Username: "RoyalFlush-x7fq", Token: "tok-a"}

	require.NoError(t, store.SaveRate(ctx, identity, 15.5))

	assert.Equal(t, "15.5", kv.data[rateKeyPrefix+identity.Username])

	var envelope models.RateEnvelope
	require.NoError(t, json.Unmarshal([]byte(kv.data[latestRateKeyPrefix+identity.Token]), &envelope))
	assert.Equal(t, 15.5, envelope.Rate)
	assert.Equal(t, int64(1756600000000), envelope.Timestamp)
}

func TestRate_TokenEnvelopeWinsAndResyncs(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()
	identity := models.Identity{Username: "RoyalFlush-x7fq", Token: "tok-a"}

	// the two facets disagree, e.g. after recovery on a new device
	kv.data[rateKeyPrefix+identity.Username] = "10"
	kv.data[latestRateKeyPrefix+identity.Token] = `{"rate":20,"timestamp":100}`

	rate, ok := store.Rate(ctx, identity)

	require.True(t, ok)
	assert.Equal(t, 20.0, rate)

	// username-keyed copy is resynced to the authoritative value
	assert.Equal(t, "20", kv.data[rateKeyPrefix+identity.Username])
}

func TestRate_UsernameFallback(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	identity := models.Identity{Username: "RoyalFlush-x7fq", Token: "tok-a"}

	kv.data[rateKeyPrefix+identity.Username] = "12.25"

	rate, ok := store.Rate(context.Background(), identity)

	require.True(t, ok)
	assert.Equal(t, 12.25, rate)
}

func TestRate_NeverSet(t *testing.T) {
	store := newTestStore(newFakeKV())

	_, ok := store.Rate(context.Background(), models.Identity{Username: "u", Token: "t"})

	assert.False(t, ok)
}

func TestRate_StorageErrorTreatedAsUnset(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("storage unavailable")
	store := newTestStore(kv)

	_, ok := store.Rate(context.Background(), models.Identity{Username: "u", Token: "t"})

	assert.False(t, ok)
}

func TestClearRate_RemovesUsernameKey(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()
	identity := models.Identity{Username: "RoyalFlush-x7fq", Token: "tok-a"}

	require.NoError(t, store.SaveRate(ctx, identity, 15.0))
	store.ClearRate(ctx, identity.Username)

	assert.NotContains(t, kv.data, rateKeyPrefix+identity.Username)
	assert.Contains(t, kv.data, latestRateKeyPrefix+identity.Token)
}
