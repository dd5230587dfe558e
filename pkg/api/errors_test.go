package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/storage"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 422",
			err:        services.NewValidationError("mask", "required for mask attacks"),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "required for mask attacks",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "guard rejection maps to 409",
			err:        services.ErrGuardRejected,
			expectCode: http.StatusConflict,
			expectMsg:  "transition not allowed",
		},
		{
			name:       "lease not held maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrLeaseNotHeld),
			expectCode: http.StatusConflict,
			expectMsg:  "not leased to this agent",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        services.ErrConcurrentModification,
			expectCode: http.StatusConflict,
			expectMsg:  "modified concurrently",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "invalid input maps to 400",
			err:        fmt.Errorf("%w: direction must be up or down", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectMsg:  "direction must be up or down",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("connection reset while updating task"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}

// Expired and forged signatures must be indistinguishable from a missing
// resource so signed URLs cannot be probed.
func TestMapDownloadError(t *testing.T) {
	for _, err := range []error{storage.ErrBadSignature, storage.ErrExpired} {
		he := mapDownloadError(err)
		assert.Equal(t, http.StatusNotFound, he.Code)
		assert.Contains(t, he.Error(), "resource not found")
	}

	he := mapDownloadError(services.ErrLeaseNotHeld)
	assert.Equal(t, http.StatusConflict, he.Code)
}
