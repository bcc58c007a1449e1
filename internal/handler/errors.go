// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"orgsite-backend/internal/transport/httpdto"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service sentinel errors to HTTP responses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, site_errors.ErrInvalidInput), errors.Is(err, site_errors.ErrNoFiles):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
	case errors.Is(err, site_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("not found", "NOT_FOUND"))
	case errors.Is(err, site_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
	case errors.Is(err, site_errors.ErrNotUploaded):
		c.JSON(http.StatusBadGateway, httpdto.NewErrorResponse("file upload failed", "UPLOAD_FAILED"))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("internal error", "INTERNAL_ERROR"))
	}
}
