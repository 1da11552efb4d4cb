package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		method    string
		path      string
		body      string
		wantLevel string
	}{
		{"list", http.StatusOK, http.MethodGet, "/api/events", "[]", "INFO"},
		{"create", http.StatusCreated, http.MethodPost, "/api/events", `{"id":"x"}`, "INFO"},
		{"client error", http.StatusNotFound, http.MethodGet, "/api/events/abc", `{"error":"Event not found"}`, "INFO"},
		{"server error", http.StatusInternalServerError, http.MethodDelete, "/api/events/abc", `{"error":"boom"}`, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(RequestIDHeaderName, "req-42")
			rr := httptest.NewRecorder()

			RequestID(LoggingMiddleware(logger, next)).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			line := decodeLogLine(t, &buf)
			assert.Equal(t, "request", line["msg"])
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.path, line["path"])
			assert.EqualValues(t, tt.status, line["status"])
			assert.EqualValues(t, len(tt.body), line["bytes"])
			assert.Equal(t, "req-42", line["request_id"])
			assert.Contains(t, line, "duration_ms")
		})
	}
}

func TestLoggingMiddleware_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	LoggingMiddleware(logger, next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	line := decodeLogLine(t, &buf)
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.Equal(t, "", line["request_id"])
}
