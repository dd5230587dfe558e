package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// createResourceHandler handles POST /api/v1/resources: register file
// metadata and get back the storage handle plus a signed download URL.
func (s *Server) createResourceHandler(c *echo.Context) error {
	var req createResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := s.resourceService.CreateResource(c.Request().Context(), req.toService())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, s.resourceResponse(res))
}

// listResourcesHandler handles GET /api/v1/resources.
func (s *Server) listResourcesHandler(c *echo.Context) error {
	resources, err := s.resourceService.ListResources(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]resourceResponse, 0, len(resources))
	for _, res := range resources {
		out = append(out, s.resourceResponse(res))
	}
	return c.JSON(http.StatusOK, out)
}

// getResourceHandler handles GET /api/v1/resources/:id.
func (s *Server) getResourceHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	res, err := s.resourceService.GetResource(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, s.resourceResponse(res))
}

// setLineCountHandler handles PUT /api/v1/resources/:id/line_count.
// Line counts arrive asynchronously from whatever ingests the file;
// attacks that need them stay undispatchable until this lands.
func (s *Server) setLineCountHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req lineCountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := s.resourceService.SetLineCount(c.Request().Context(), id, req.LineCount)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, s.resourceResponse(res))
}

// deleteResourceHandler handles DELETE /api/v1/resources/:id. Fails
// with 409 while any attack still references the file.
func (s *Server) deleteResourceHandler(c *echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.resourceService.DeleteResource(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
