package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/v1/health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the core's own components (database, storage signer) are checked;
// agent fleet health is a dashboard concern, not a liveness one.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := s.dbClient.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{
			Status: dbHealth.Status,
			Message: fmt.Sprintf("ping %dms, %d/%d connections in use",
				dbHealth.ResponseTime, dbHealth.InUse, dbHealth.MaxOpenConns),
		}
		if dbHealth.Status == healthStatusDegraded {
			status = healthStatusDegraded
		}
	}

	if s.signer.Ephemeral() {
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
		checks["storage"] = HealthCheck{
			Status:  healthStatusDegraded,
			Message: "signing secret is ephemeral; issued URLs will not survive a restart",
		}
	} else {
		checks["storage"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
