package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citizenhub/backend/internal/catalog"
	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/services"
)

// respondError maps a service error to its HTTP status. Anything
// outside the known taxonomy becomes a plain 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Database not configured"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, catalog.ErrGuideNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Guide not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
