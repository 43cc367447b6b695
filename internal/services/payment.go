package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/internal/validate"
	"github.com/citizenhub/backend/pkg/metrics"
)

// PaymentService records mock payment initiations. No settlement or
// status transition happens here; a real gateway is an external
// collaborator.
type PaymentService struct {
	store   db.Store
	auth    *AuthService
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewPaymentService(store db.Store, auth *AuthService, logger *zap.Logger, collector *metrics.Collector) *PaymentService {
	return &PaymentService{
		store:   store,
		auth:    auth,
		logger:  logger.With(zap.String("service", "payment")),
		metrics: collector,
	}
}

// Init records a payment for the token's user and reports it
// initiated. A negative amount is rejected before any store write.
func (s *PaymentService) Init(ctx context.Context, token, purpose string, amount float64, applicationRef string) (string, error) {
	email, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return "", err
	}

	if res := validate.Amount(amount); !res.OK() {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, res.Error())
	}

	payment := models.Payment{
		UserEmail:      email,
		Purpose:        purpose,
		Amount:         amount,
		Currency:       models.CurrencyINR,
		Status:         models.PaymentInitiated,
		ApplicationRef: applicationRef,
	}

	id, err := s.store.Create(ctx, db.CollectionPayments, payment)
	if err != nil {
		return "", err
	}

	s.metrics.IncrementCounter("payments_initiated", models.CurrencyINR)
	s.logger.Info("Payment initiated",
		zap.String("email", email),
		zap.Float64("amount", amount),
		zap.String("payment_id", id))

	return id, nil
}
