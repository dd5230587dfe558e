package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// preRegisterAgentHandler handles POST /api/v1/agents. The response is
// the only place the one-time registration token ever appears.
func (s *Server) preRegisterAgentHandler(c *echo.Context) error {
	var req services.PreRegisterRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}
	resp, err := s.agentService.PreRegister(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	agents, err := s.agentService.ListAgents(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]*models.AgentResponse, 0, len(agents))
	for _, a := range agents {
		dto, err := s.agentService.AgentDTO(ctx, a)
		if err != nil {
			return mapServiceError(err)
		}
		out = append(out, dto)
	}
	return c.JSON(http.StatusOK, out)
}

// getAgentHandler handles GET /api/v1/agents/:id (operator view).
func (s *Server) getAgentHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	a, err := s.agentService.GetAgent(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}
	dto, err := s.agentService.AgentDTO(ctx, a)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto)
}

// enableAgentHandler handles POST /api/v1/agents/:id/enable.
func (s *Server) enableAgentHandler(c *echo.Context) error {
	return s.agentToggle(c, s.agentService.Enable)
}

// disableAgentHandler handles POST /api/v1/agents/:id/disable. The
// agent's held tasks go back to the pool before it stops.
func (s *Server) disableAgentHandler(c *echo.Context) error {
	return s.agentToggle(c, s.agentService.Disable)
}

// deleteAgentHandler handles DELETE /api/v1/agents/:id.
func (s *Server) deleteAgentHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.agentService.DeleteAgent(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) agentToggle(c *echo.Context, op func(ctx context.Context, id int) (*ent.Agent, error)) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	a, err := op(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}
	dto, err := s.agentService.AgentDTO(ctx, a)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dto)
}
