package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/ent"
)

// createCampaignHandler handles POST /api/v1/campaigns. Campaigns are
// born draft; attacks attach before start.
func (s *Server) createCampaignHandler(c *echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	camp, err := s.campaignService.CreateCampaign(c.Request().Context(), req.toService())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, camp)
}

// listCampaignsHandler handles GET /api/v1/campaigns?project_id=.
func (s *Server) listCampaignsHandler(c *echo.Context) error {
	projectID, err := strconv.Atoi(c.QueryParam("project_id"))
	if err != nil || projectID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "project_id query parameter is required")
	}
	includeArchived := c.QueryParam("include_archived") == "true"

	campaigns, err := s.campaignService.ListCampaigns(c.Request().Context(), projectID, includeArchived)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, campaigns)
}

// getCampaignHandler handles GET /api/v1/campaigns/:id.
func (s *Server) getCampaignHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	camp, err := s.campaignService.GetCampaign(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, camp)
}

// updateCampaignHandler handles PATCH /api/v1/campaigns/:id.
func (s *Server) updateCampaignHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	camp, err := s.campaignService.UpdateCampaign(c.Request().Context(), id, req.toService())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, camp)
}

// deleteCampaignHandler handles DELETE /api/v1/campaigns/:id.
func (s *Server) deleteCampaignHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.campaignService.DeleteCampaign(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// campaignProgressHandler handles GET /api/v1/campaigns/:id/progress.
func (s *Server) campaignProgressHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	progress, err := s.campaignService.Progress(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, progress)
}

// startCampaignHandler handles POST /api/v1/campaigns/:id/start.
func (s *Server) startCampaignHandler(c *echo.Context) error {
	return s.campaignLifecycle(c, s.campaignService.StartCampaign)
}

// pauseCampaignHandler handles POST /api/v1/campaigns/:id/pause.
func (s *Server) pauseCampaignHandler(c *echo.Context) error {
	return s.campaignLifecycle(c, s.campaignService.PauseCampaign)
}

// resumeCampaignHandler handles POST /api/v1/campaigns/:id/resume.
func (s *Server) resumeCampaignHandler(c *echo.Context) error {
	return s.campaignLifecycle(c, s.campaignService.ResumeCampaign)
}

// stopCampaignHandler handles POST /api/v1/campaigns/:id/stop.
func (s *Server) stopCampaignHandler(c *echo.Context) error {
	return s.campaignLifecycle(c, s.campaignService.StopCampaign)
}

// archiveCampaignHandler handles POST /api/v1/campaigns/:id/archive.
func (s *Server) archiveCampaignHandler(c *echo.Context) error {
	return s.campaignLifecycle(c, s.campaignService.ArchiveCampaign)
}

// campaignLifecycle runs one campaign state operation and returns the
// updated row. Guard rejections surface as 409.
func (s *Server) campaignLifecycle(c *echo.Context, op func(ctx context.Context, id int) (*ent.Campaign, error)) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	camp, err := op(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	slog.Info("campaign lifecycle action",
		"campaign_id", camp.ID,
		"state", camp.State,
		"operator", extractAuthor(c))
	return c.JSON(http.StatusOK, camp)
}
