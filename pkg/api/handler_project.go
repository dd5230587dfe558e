package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// createProjectHandler handles POST /api/v1/projects.
func (s *Server) createProjectHandler(c *echo.Context) error {
	var req services.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p, err := s.projectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *echo.Context) error {
	projects, err := s.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	p, err := s.projectService.GetProject(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// createHashListHandler handles POST /api/v1/hash_lists: the list plus
// its initial items in one transaction.
func (s *Server) createHashListHandler(c *echo.Context) error {
	var req services.CreateHashListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	hl, err := s.hashListService.CreateHashList(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, hl)
}

// getHashListHandler handles GET /api/v1/hash_lists/:id.
func (s *Server) getHashListHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	hl, err := s.hashListService.GetHashList(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, hl)
}

// addHashItemsHandler handles POST /api/v1/hash_lists/:id/items, a
// bulk append. Items already present are skipped, counters recount.
func (s *Server) addHashItemsHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req addItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}
	hl, err := s.hashListService.AddItems(c.Request().Context(), id, req.Items)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, hl)
}
