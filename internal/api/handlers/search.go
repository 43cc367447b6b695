package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citizenhub/backend/internal/catalog"
)

// SearchHandler serves predictive search over the static service
// catalog. No auth; the catalog is public.
type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

func (h *SearchHandler) Search(c *gin.Context) {
	results := catalog.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}
