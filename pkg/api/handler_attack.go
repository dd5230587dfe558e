package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// createAttackHandler handles POST /api/v1/campaigns/:id/attacks. The
// new attack lands at the end of the campaign's dispatch order.
func (s *Server) createAttackHandler(c *echo.Context) error {
	campaignID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req attackParamsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	atk, err := s.attackService.CreateAttack(c.Request().Context(), campaignID, req.toService())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, atk)
}

// listAttacksHandler handles GET /api/v1/campaigns/:id/attacks.
func (s *Server) listAttacksHandler(c *echo.Context) error {
	campaignID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	attacks, err := s.attackService.ListAttacks(c.Request().Context(), campaignID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, attacks)
}

// getAttackHandler handles GET /api/v1/attacks/:id (operator view).
func (s *Server) getAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	atk, err := s.attackService.GetAttack(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, atk)
}

// updateAttackHandler handles PATCH /api/v1/attacks/:id. Editing
// changes the keyspace geometry, so it only applies to attacks that
// have no running work.
func (s *Server) updateAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req attackParamsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	atk, err := s.attackService.UpdateAttack(c.Request().Context(), id, req.toService())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, atk)
}

// deleteAttackHandler handles DELETE /api/v1/attacks/:id.
func (s *Server) deleteAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.attackService.DeleteAttack(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// resetAttackHandler handles POST /api/v1/attacks/:id/reset: a
// terminal attack back to pending with a clean slate.
func (s *Server) resetAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	atk, err := s.attackService.ResetAttack(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, atk)
}

// abandonAttackHandler handles POST /api/v1/attacks/:id/abandon: pull
// a live attack out of dispatch, destroying its tasks.
func (s *Server) abandonAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	atk, err := s.attackService.AbandonAttack(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, atk)
}

// moveAttackHandler handles POST /api/v1/attacks/:id/move with
// {direction: up|down}, swapping dispatch positions with a neighbor.
func (s *Server) moveAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req moveAttackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	atk, err := s.attackService.MoveAttack(c.Request().Context(), id, req.Direction)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, atk)
}

// listTaskCracksHandler handles GET /api/v1/tasks/:id/cracks, the
// operator view of what a task recovered.
func (s *Server) listTaskCracksHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	cracks, err := s.crackService.ListCracks(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cracks)
}

// taskStatusHistoryHandler handles GET /api/v1/tasks/:id/statuses, the
// retained status frames newest first.
func (s *Server) taskStatusHistoryHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	frames, err := s.statusService.History(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, frames)
}
