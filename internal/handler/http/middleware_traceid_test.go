package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	router := newTestRouter(&mockLogService{})

	w := doRequest(t, router, http.MethodGet, "/api/version", "")

	assert.NotEmpty(t, w.Header().Get(traceIDHeader))
}

func TestWithTraceID_EchoesRequestHeader(t *testing.T) {
	router := newTestRouter(&mockLogService{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(traceIDHeader))
}
