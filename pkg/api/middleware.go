package api

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"
	"golang.org/x/time/rate"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/metrics"
)

// agentContextKey stashes the authenticated agent on the request context.
const agentContextKey = "cipherswarm.agent"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestMetrics counts requests by method and status and times them.
func requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			status := http.StatusOK
			if res, uerr := echo.UnwrapResponse(c.Response()); uerr == nil {
				status = res.Status
			}
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			method := c.Request().Method
			metrics.APIRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
			metrics.APIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// agentAuth authenticates the csa_ bearer token, stamps the agent's
// last-seen fields and stores the agent for the handler. The presented
// token value never reaches a log line or an error message.
func (s *Server) agentAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			ctx := c.Request().Context()
			a, err := s.agentService.Authenticate(ctx, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid agent token")
			}

			if err := s.agentService.TouchSeen(ctx, a.ID, clientIP(c)); err != nil {
				slog.Warn("failed to stamp agent check-in", "agent_id", a.ID, "error", err)
			}

			c.Set(agentContextKey, a)
			return next(c)
		}
	}
}

// currentAgent returns the agent placed by agentAuth, or nil outside it.
func currentAgent(c *echo.Context) *ent.Agent {
	a, _ := c.Get(agentContextKey).(*ent.Agent)
	return a
}

// clientIP returns the peer address, honoring proxy headers when present.
func clientIP(c *echo.Context) string {
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		if ip, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(ip)
		}
		return strings.TrimSpace(fwd)
	}
	if ip := c.Request().Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}

// pollGovernor applies a per-agent token bucket to work polling and
// remembers recent trips so heartbeats can tell the agent to back off.
type pollGovernor struct {
	mu     sync.Mutex
	states map[int]*pollState

	rate   rate.Limit
	burst  int
	window time.Duration
}

type pollState struct {
	limiter   *rate.Limiter
	trippedAt time.Time
}

func newPollGovernor(cfg *config.ServerConfig) *pollGovernor {
	return &pollGovernor{
		states: make(map[int]*pollState),
		rate:   rate.Limit(cfg.PollRate),
		burst:  cfg.PollBurst,
		window: time.Duration(cfg.BackoffSeconds) * time.Second,
	}
}

// Allow records one poll attempt and reports whether it may proceed.
func (g *pollGovernor) Allow(agentID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.states[agentID]
	if !ok {
		st = &pollState{limiter: rate.NewLimiter(g.rate, g.burst)}
		g.states[agentID] = st
	}
	if st.limiter.Allow() {
		return true
	}
	st.trippedAt = time.Now()
	return false
}

// Backoff reports whether the agent tripped the limiter recently enough
// that its next heartbeat should carry the backoff command.
func (g *pollGovernor) Backoff(agentID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.states[agentID]
	return ok && !st.trippedAt.IsZero() && time.Since(st.trippedAt) < g.window
}
