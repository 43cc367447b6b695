package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/internal/services"
)

// PaymentHandler serves the mock payment initiation endpoint.
type PaymentHandler struct {
	payments *services.PaymentService
	logger   *zap.Logger
}

func NewPaymentHandler(payments *services.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger.With(zap.String("handler", "payment")),
	}
}

type initPaymentRequest struct {
	Purpose        string  `json:"purpose"`
	Amount         float64 `json:"amount"`
	ApplicationRef string  `json:"application_ref"`
}

func (h *PaymentHandler) InitPayment(c *gin.Context) {
	var req initPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	id, err := h.payments.Init(c.Request.Context(), c.Query("token"), req.Purpose, req.Amount, req.ApplicationRef)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_id": id,
		"status":     models.PaymentInitiated,
	})
}
