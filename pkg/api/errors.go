package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/storage"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Validation failures carry the offending field in the message; state
// guard rejections and lease conflicts are 409s the agent resolves by
// re-syncing via heartbeat.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrGuardRejected) {
		return echo.NewHTTPError(http.StatusConflict, "transition not allowed from current state")
	}
	if errors.Is(err, services.ErrLeaseNotHeld) {
		return echo.NewHTTPError(http.StatusConflict, "task is not leased to this agent")
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "resource was modified concurrently")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapDownloadError hides the reason a signed URL was refused: expired,
// forged and plain wrong all look like a missing resource.
func mapDownloadError(err error) *echo.HTTPError {
	if errors.Is(err, storage.ErrBadSignature) || errors.Is(err, storage.ErrExpired) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return mapServiceError(err)
}

// notFound is the shared response for rows that do not exist and rows
// the caller is not allowed to see.
func notFound() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, "resource not found")
}
