package service

import (
	"context"
	"testing"

	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/validators"
	"github.com/mkarev/go-break-ledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: LogService (inner)
// ─────────────────────────────────────────────

type mockLogService struct {
	submitLogFn   func(ctx context.Context, record models.LogRecord) (models.LogRecord, error)
	listLogsFn    func(ctx context.Context, filter store.LogFilter) ([]models.LogRecord, error)
	saveProfileFn func(ctx context.Context, profile models.Profile) error
	getProfileFn  func(ctx context.Context, token string) (models.Profile, error)
}

func (m *mockLogService) SubmitLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	if m.submitLogFn != nil {
		return m.submitLogFn(ctx, record)
	}
	return record, nil
}

func (m *mockLogService) ListLogs(ctx context.Context, filter store.LogFilter) ([]models.LogRecord, error) {
	if m.listLogsFn != nil {
		return m.listLogsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockLogService) SaveProfile(ctx context.Context, profile models.Profile) error {
	if m.saveProfileFn != nil {
		return m.saveProfileFn(ctx, profile)
	}
	return nil
}

func (m *mockLogService) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, token)
	}
	return models.Profile{}, nil
}

func newValidatingService(inner LogService) LogService {
	return NewLogServiceValidationWrapper(validators.NewLogRecordValidator()).Wrap(inner)
}

// ── SubmitLog ────────────────────────────────────────────────────────────────

func TestValidationWrapper_SubmitLog_RejectsInvalidRecord(t *testing.T) {
	inner := &mockLogService{
		submitLogFn: func(_ context.Context, _ models.LogRecord) (models.LogRecord, error) {
			t.Fatal("inner service must not be reached")
			return models.LogRecord{}, nil
		},
	}
	svc := newValidatingService(inner)

	_, err := svc.SubmitLog(context.Background(), models.LogRecord{Token: "tok-a"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrMissingIdentity)
}

func TestValidationWrapper_SubmitLog_CoercesEmptyLocationMethod(t *testing.T) {
	inner := &mockLogService{
		submitLogFn: func(_ context.Context, record models.LogRecord) (models.LogRecord, error) {
			assert.Equal(t, models.LocationUnknown, record.LocationMethod)
			return record, nil
		},
	}
	svc := newValidatingService(inner)

	_, err := svc.SubmitLog(context.Background(), models.LogRecord{
		Username: "u",
		Token:    "t",
		Duration: 60,
	})

	require.NoError(t, err)
}

func TestValidationWrapper_SubmitLog_DelegatesValidRecord(t *testing.T) {
	called := false
	inner := &mockLogService{
		submitLogFn: func(_ context.Context, record models.LogRecord) (models.LogRecord, error) {
			called = true
			record.ID = 1
			return record, nil
		},
	}
	svc := newValidatingService(inner)

	stored, err := svc.SubmitLog(context.Background(), models.LogRecord{
		Username:       "u",
		Token:          "t",
		Duration:       60,
		Earnings:       0.25,
		CurrentRate:    15.0,
		LocationMethod: models.LocationSkipped,
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(1), stored.ID)
}

// ── SaveProfile ──────────────────────────────────────────────────────────────

func TestValidationWrapper_SaveProfile_RejectsMissingToken(t *testing.T) {
	svc := newValidatingService(&mockLogService{})

	err := svc.SaveProfile(context.Background(), models.Profile{Username: "u", Rate: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrMissingProfileToken)
}

func TestValidationWrapper_SaveProfile_DelegatesValidProfile(t *testing.T) {
	called := false
	inner := &mockLogService{
		saveProfileFn: func(_ context.Context, _ models.Profile) error {
			called = true
			return nil
		},
	}
	svc := newValidatingService(inner)

	err := svc.SaveProfile(context.Background(), models.Profile{Token: "t", Username: "u", Rate: 10})

	require.NoError(t, err)
	assert.True(t, called)
}

// ── GetProfile / ListLogs ────────────────────────────────────────────────────

func TestValidationWrapper_GetProfile_RejectsEmptyToken(t *testing.T) {
	svc := newValidatingService(&mockLogService{})

	_, err := svc.GetProfile(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestValidationWrapper_ListLogs_PassesThrough(t *testing.T) {
	want := []models.LogRecord{{ID: 1}}
	inner := &mockLogService{
		listLogsFn: func(_ context.Context, filter store.LogFilter) ([]models.LogRecord, error) {
			assert.Equal(t, "Rome", filter.City)
			return want, nil
		},
	}
	svc := newValidatingService(inner)

	got, err := svc.ListLogs(context.Background(), store.LogFilter{City: "Rome"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
