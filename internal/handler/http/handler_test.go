package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/models"
)

// ─────────────────────────────────────────────
// Mock: service.LogService
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

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestRouter(logSvc service.LogService) http.Handler {
	h := NewHandler(&service.Services{
		LogService:     logSvc,
		AppInfoService: &stubAppInfoService{version: "1.2.3"},
	}, logger.Nop())

	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
