package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldenjg/cornharvest/internal/logger"
)

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.Config{Level: "debug", Format: "text"}, &buf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	rec := httptest.NewRecorder()
	loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := logger.RequestIDFromContext(r.Context())
		assert.True(t, ok, "request id attached")
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestHeaders)
	assert.Contains(t, out, RedactedValue)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, "status=202")
}

func TestLoggingMiddleware_SkipsHealthz(t *testing.T) {
	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.Config{Level: "debug", Format: "text"}, &buf)

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())
}
