package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/practice-tracker/internal/api/shared"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	logBuf, base := logger.NewTestLogger(t)

	var traceID string
	var ctxLogger *slog.Logger
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		ctxLogger = logger.FromContext(r.Context())
		ctxLogger.Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/problems", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.NotEmpty(t, traceID)
	require.NotNil(t, ctxLogger)

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, traceID, entry["trace_id"])
	}
	assert.Equal(t, "request completed", entries[1]["msg"])
	assert.EqualValues(t, http.StatusTeapot, entries[1]["status"])
}

func TestTraceMiddlewareUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	}))

	for range 5 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, seen, 5)
}
