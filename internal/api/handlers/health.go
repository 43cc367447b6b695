package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citizenhub/backend/internal/db"
)

// HealthHandler serves the liveness message and the store probe.
type HealthHandler struct {
	store db.Store
}

func NewHealthHandler(store db.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Citizen Hub API running"})
}

// TestDatabase reports backend/store health in the portal's status
// format. It never fails the request; problems show up in the fields.
func (h *HealthHandler) TestDatabase(c *gin.Context) {
	info := gin.H{
		"backend":     "✅ Running",
		"database":    "❌ Not Available",
		"collections": []string{},
	}

	ctx := c.Request.Context()
	if err := h.store.Ping(ctx); err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			c.JSON(http.StatusOK, info)
			return
		}
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		info["database"] = "⚠️ " + msg
		c.JSON(http.StatusOK, info)
		return
	}

	info["database"] = "✅ Connected"
	if names, err := h.store.Collections(ctx); err == nil {
		info["collections"] = names
	}
	c.JSON(http.StatusOK, info)
}
