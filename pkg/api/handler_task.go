package api

import (
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// nextTaskHandler handles GET /api/v1/client/tasks/next, the agent's
// work poll. A 429 with backoff_seconds tells a hot-looping agent to
// slow down; "no_work" and "benchmark_required" are 200s so retry
// logic stays on the happy path.
func (s *Server) nextTaskHandler(c *echo.Context) error {
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	if !s.polls.Allow(a.ID) {
		return c.JSON(http.StatusTooManyRequests, &backoffResponse{
			Error:          "poll rate exceeded",
			BackoffSeconds: s.cfg.BackoffSeconds,
		})
	}

	t, err := s.matcher.NextTask(c.Request().Context(), a.ID)
	switch {
	case errors.Is(err, services.ErrNoWork):
		return c.JSON(http.StatusOK, &models.TaskStatusResponse{Status: "no_work"})
	case errors.Is(err, services.ErrBenchmarkRequired):
		return c.JSON(http.StatusOK, &models.TaskStatusResponse{Status: "benchmark_required"})
	case err != nil:
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, taskResponse(t))
}

// getClientAttackHandler handles GET /api/v1/client/attacks/:id. The
// attack is only visible when the agent is assigned to the campaign's
// project; anything else reads as 404.
func (s *Server) getClientAttackHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}

	ctx := c.Request().Context()
	bundle, err := s.attackService.GetAttackBundle(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}
	visible, err := s.agentService.InProject(ctx, a.ID, bundle.Campaign.ProjectID)
	if err != nil {
		return mapServiceError(err)
	}
	if !visible {
		return notFound()
	}

	resp, err := s.attackResponse(ctx, bundle)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// downloadHashListHandler handles GET /api/v1/client/attacks/:id/hash_list.
// Authorization rides in the URL: the signature covers the canonical
// path and expiry, so there is no bearer check here. The body is the
// current uncracked remainder, one hash per line.
func (s *Server) downloadHashListHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	path := c.Request().URL.Path
	if err := s.signer.VerifyQuery(path, c.QueryParam("expires"), c.QueryParam("signature")); err != nil {
		return mapDownloadError(err)
	}

	ctx := c.Request().Context()
	bundle, err := s.attackService.GetAttackBundle(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}
	body, _, err := s.hashListService.RenderUncracked(ctx, bundle.HashList.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", body)
}

// taskStatusHandler handles POST /api/v1/client/tasks/:id/status, the
// periodic hashcat status frame. Ingestion renews the lease.
func (s *Server) taskStatusHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}

	var frame models.HashcatStatusFrame
	if err := c.Bind(&frame); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.statusService.Ingest(c.Request().Context(), a.ID, id, frame); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskCracksHandler handles POST /api/v1/client/tasks/:id/cracks.
func (s *Server) taskCracksHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}

	var req crackBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.crackService.SubmitCracks(c.Request().Context(), a.ID, id, req.Cracks); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskErrorHandler handles POST /api/v1/client/tasks/:id/error. A
// fatal report fails the task, which cascades to its attack.
func (s *Server) taskErrorHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}

	var sub models.ErrorSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.agentService.ReportError(c.Request().Context(), a.ID, &id, sub); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskExhaustedHandler handles POST /api/v1/client/tasks/:id/exhausted:
// the agent ran the slice to the end without finishing the hash list.
func (s *Server) taskExhaustedHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	if err := s.taskService.ReportExhausted(c.Request().Context(), a.ID, id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskCompletedHandler handles POST /api/v1/client/tasks/:id/completed.
func (s *Server) taskCompletedHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	if err := s.taskService.ReportCompleted(c.Request().Context(), a.ID, id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskAbandonHandler handles POST /api/v1/client/tasks/:id/abandon, the
// agent's voluntary surrender. Completed work stays counted; the slice
// goes back to the pool.
func (s *Server) taskAbandonHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	if err := s.taskService.Abandon(c.Request().Context(), a.ID, id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskCancelHandler handles POST /api/v1/client/tasks/:id/cancel, the
// agent confirming a stop signal. Retries after the task already
// failed are 204s, not conflicts.
func (s *Server) taskCancelHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}
	if err := s.taskService.ConfirmCancel(c.Request().Context(), a.ID, id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// taskZapsHandler handles GET /api/v1/client/tasks/:id/zaps: the
// cracked hash values for the task's hash list, one per line, so the
// agent can prune its in-flight target set.
func (s *Server) taskZapsHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	a := currentAgent(c)
	if a == nil {
		return notFound()
	}

	ctx := c.Request().Context()
	hashListID, err := s.taskService.HashListID(ctx, a.ID, id)
	if err != nil {
		return mapServiceError(err)
	}
	values, err := s.hashListService.CrackedHashValues(ctx, hashListID)
	if err != nil {
		return mapServiceError(err)
	}

	var b strings.Builder
	for _, v := range values {
		b.WriteString(v)
		b.WriteByte('\n')
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}
