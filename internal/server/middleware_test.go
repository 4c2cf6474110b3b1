package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	guard := NewClientGuard(1000, time.Minute)
	handler := AuthMiddleware(apiKey, nil, guard)(okHandler)

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/players", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/players", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/players", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Readyz", "", "/readyz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_EmptyKeyDisablesAuth(t *testing.T) {
	handler := AuthMiddleware("", nil, NewClientGuard(10, time.Minute))(okHandler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/players", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(nil, NewClientGuard(2, time.Minute))(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/players", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/api/v1/players", nil)
	other.RemoteAddr = "192.0.2.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientGuard_WindowResets(t *testing.T) {
	guard := NewClientGuard(1, 50*time.Millisecond)

	assert.True(t, guard.RecordRequest("ip"))
	assert.False(t, guard.RecordRequest("ip"))

	time.Sleep(80 * time.Millisecond)

	assert.True(t, guard.RecordRequest("ip"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "198.51.100.7:5555", "", nil, "198.51.100.7"},
		{"untrusted forwarder ignored", "198.51.100.7:5555", "203.0.113.9", nil, "198.51.100.7"},
		{"trusted proxy", "10.0.0.1:5555", "203.0.113.1, 203.0.113.9", []string{"10.0.0.1"}, "203.0.113.9"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
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
	SecurityHeadersMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, want := range expected {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("redacts secrets", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/players", nil)
		req.Header.Set("X-API-Key", "secret-key-123")
		req.Header.Set("Authorization", "Bearer mytoken")
		req.Header.Set("User-Agent", "TestAgent")

		loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), req)

		out := buf.String()
		require.Contains(t, out, LogMsgRequestHeaders)
		assert.NotContains(t, out, "secret-key-123")
		assert.NotContains(t, out, "Bearer mytoken")
		assert.Contains(t, out, "TestAgent")
		assert.Contains(t, out, LogMsgRequestCompleted)
	})

	t.Run("propagates request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/players", nil)
		req.Header.Set(HeaderRequestID, "req-abc")
		rec := httptest.NewRecorder()

		loggingMiddleware(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, "req-abc", rec.Header().Get(HeaderRequestID))
	})

	t.Run("generates request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		loggingMiddleware(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))

		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("skips probes", func(t *testing.T) {
		buf.Reset()
		loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.False(t, strings.Contains(buf.String(), LogMsgRequestStarted))
	})
}
