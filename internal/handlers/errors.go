package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pagecraft-backend/internal/service"
	"pagecraft-backend/pkg/logger"
)

// respondError maps service errors onto HTTP status codes. Unexpected errors
// are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPageNotFound), errors.Is(err, service.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoChange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownSectionType), errors.Is(err, service.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
