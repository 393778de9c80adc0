package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	h := AuthMiddleware(apiKey, nil, NewRateLimiter(0, 0))(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"valid key", apiKey, "/api/v1/sessions", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/sessions", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/sessions", http.StatusUnauthorized},
		{"public healthz", "", "/healthz", http.StatusOK},
		{"public metrics", "", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	h := AuthMiddleware("", nil, NewRateLimiter(0, 0))(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	h := RateLimitMiddleware(nil, limiter)(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.7:999"), "other clients unaffected")

	// Next window
	now := time.Now().Add(2 * time.Minute)
	limiter.now = func() time.Time { return now }
	assert.Equal(t, http.StatusOK, send("192.168.1.100:1234"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "203.0.113.9:5000", "", nil, "203.0.113.9"},
		{"untrusted forwarded ignored", "203.0.113.9:5000", "1.2.3.4", nil, "203.0.113.9"},
		{"trusted proxy", "10.0.0.1:80", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"no port", "weird", "", nil, "weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}
