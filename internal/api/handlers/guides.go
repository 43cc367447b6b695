package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citizenhub/backend/internal/catalog"
)

// GuideHandler serves the static how-to guides.
type GuideHandler struct{}

func NewGuideHandler() *GuideHandler {
	return &GuideHandler{}
}

func (h *GuideHandler) GetGuide(c *gin.Context) {
	guide, err := catalog.GetGuide(c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}
