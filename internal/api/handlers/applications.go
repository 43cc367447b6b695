package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/internal/services"
)

// ApplicationHandler files and lists document applications.
type ApplicationHandler struct {
	applications *services.ApplicationService
	logger       *zap.Logger
}

func NewApplicationHandler(applications *services.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		logger:       logger.With(zap.String("handler", "application")),
	}
}

type createApplicationRequest struct {
	DocType  models.DocType         `json:"doc_type"`
	Metadata map[string]interface{} `json:"metadata"`
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	result, err := h.applications.Create(c.Request.Context(), c.Query("token"), req.DocType, req.Metadata)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": result.Reference,
		"status":    result.Status,
	})
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	items, err := h.applications.List(c.Request.Context(), c.Query("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
