package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/cipherswarm/cipherswarm/pkg/config"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestAgentAuth_MissingToken(t *testing.T) {
	// Requests that never present a bearer token are rejected before the
	// agent service is consulted, so a bare Server is enough here.
	s := &Server{}
	e := echo.New()
	e.GET("/guarded", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, s.agentAuth())

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic Y3NhOnNlY3JldA=="},
		{name: "empty bearer", header: "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCurrentAgent_OutsideAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Nil(t, currentAgent(c))
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	newCtx := func(remoteAddr string, headers map[string]string) *echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	assert.Equal(t, "10.0.0.7",
		clientIP(newCtx("10.0.0.7:51334", nil)))
	assert.Equal(t, "203.0.113.9",
		clientIP(newCtx("10.0.0.7:51334", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"})))
	assert.Equal(t, "203.0.113.9",
		clientIP(newCtx("10.0.0.7:51334", map[string]string{"X-Forwarded-For": "203.0.113.9"})))
	assert.Equal(t, "198.51.100.4",
		clientIP(newCtx("10.0.0.7:51334", map[string]string{"X-Real-Ip": "198.51.100.4"})))
}

func TestPollGovernor(t *testing.T) {
	cfg := &config.ServerConfig{
		PollRate:       1,
		PollBurst:      2,
		BackoffSeconds: 30,
	}
	g := newPollGovernor(cfg)

	// Burst allowance, then the bucket is dry.
	assert.True(t, g.Allow(1))
	assert.True(t, g.Allow(1))
	assert.False(t, g.Allow(1))

	// The trip is remembered inside the backoff window.
	assert.True(t, g.Backoff(1))

	// Other agents have independent buckets and no backoff.
	assert.True(t, g.Allow(2))
	assert.False(t, g.Backoff(2))
}

func TestPollGovernor_BackoffWindowExpires(t *testing.T) {
	g := newPollGovernor(&config.ServerConfig{PollRate: 1000, PollBurst: 1, BackoffSeconds: 0})
	assert.True(t, g.Allow(1))

	g.mu.Lock()
	g.states[1].trippedAt = time.Now().Add(-time.Second)
	g.mu.Unlock()

	assert.False(t, g.Backoff(1))
}
