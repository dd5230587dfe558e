package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// registerAgentHandler handles POST /api/v1/client/agents.
// The one-time csi_ registration token travels in the body, not as a
// bearer header; an unknown or already-redeemed token is a plain 404.
func (s *Server) registerAgentHandler(c *echo.Context) error {
	var req services.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := s.agentService.Register(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// getOwnAgentHandler handles GET /api/v1/client/agents/:id.
// Agents can only see themselves; any other id looks like it does not
// exist.
func (s *Server) getOwnAgentHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil || a.ID != id {
		return notFound()
	}

	dto, err := s.agentService.AgentDTO(c.Request().Context(), a)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto)
}

// submitBenchmarkHandler handles POST /api/v1/client/agents/:id/benchmark.
func (s *Server) submitBenchmarkHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil || a.ID != id {
		return notFound()
	}

	var sub models.BenchmarkSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.benchmarkService.Submit(c.Request().Context(), id, sub); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// heartbeatHandler handles POST /api/v1/client/agents/:id/heartbeat.
// A backoff command from a recently tripped poll limiter overrides a
// plain continue so the agent slows down before its next tasks/next.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil || a.ID != id {
		return notFound()
	}

	var req heartbeatRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	resp, err := s.agentService.Heartbeat(c.Request().Context(), id, req.State)
	if err != nil {
		return mapServiceError(err)
	}
	if resp.Command == models.CommandContinue && s.polls.Backoff(id) {
		resp.Command = models.CommandBackoff
		resp.BackoffSeconds = s.cfg.BackoffSeconds
	}
	return c.JSON(http.StatusOK, resp)
}

// shutdownAgentHandler handles POST /api/v1/client/agents/:id/shutdown.
func (s *Server) shutdownAgentHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil || a.ID != id {
		return notFound()
	}

	if err := s.agentService.Shutdown(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// agentErrorHandler handles POST /api/v1/client/agents/:id/error, the
// agent-level report with no task attached.
func (s *Server) agentErrorHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil || a.ID != id {
		return notFound()
	}

	var sub models.ErrorSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.agentService.ReportError(c.Request().Context(), id, nil, sub); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// configurationHandler handles GET /api/v1/client/configuration.
func (s *Server) configurationHandler(c *echo.Context) error {
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	cfg, err := s.agentService.Configuration(c.Request().Context(), a.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// authenticateHandler handles GET /api/v1/client/authenticate, the
// agent's token probe at startup.
func (s *Server) authenticateHandler(c *echo.Context) error {
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	return c.JSON(http.StatusOK, &authenticateResponse{
		Authenticated: true,
		AgentID:       a.ID,
	})
}
