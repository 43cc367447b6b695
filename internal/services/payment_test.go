package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/db/dbtest"
	"github.com/citizenhub/backend/pkg/metrics"
)

func newPaymentService(t *testing.T, store db.Store) (*PaymentService, *AuthService) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	collector := metrics.NewCollector()
	auth := NewAuthService(store, logger, collector)
	return NewPaymentService(store, auth, logger, collector), auth
}

func TestInitPayment(t *testing.T) {
	store := dbtest.New()
	svc, auth := newPaymentService(t, store)
	token := loginAs(t, auth, "asha@example.com")

	id, err := svc.Init(context.Background(), token, "PAN application fee", 107, "app-123")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	payments := store.All(db.CollectionPayments)
	require.Len(t, payments, 1)
	assert.Equal(t, "asha@example.com", payments[0]["user_email"])
	assert.Equal(t, "INR", payments[0]["currency"])
	assert.Equal(t, "initiated", payments[0]["status"])
	assert.Equal(t, "app-123", payments[0]["application_ref"])
}

func TestInitPaymentZeroAmountAllowed(t *testing.T) {
	store := dbtest.New()
	svc, auth := newPaymentService(t, store)
	token := loginAs(t, auth, "asha@example.com")

	_, err := svc.Init(context.Background(), token, "free enrolment", 0, "")
	assert.NoError(t, err)
}

func TestInitPaymentNegativeAmountRejected(t *testing.T) {
	store := dbtest.New()
	svc, auth := newPaymentService(t, store)
	token := loginAs(t, auth, "asha@example.com")
	writesBefore := store.WriteCount

	_, err := svc.Init(context.Background(), token, "refund me", -1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, writesBefore, store.WriteCount, "rejected payments must not write")
}

func TestInitPaymentRequiresValidToken(t *testing.T) {
	store := dbtest.New()
	svc, _ := newPaymentService(t, store)

	_, err := svc.Init(context.Background(), "bogus", "fee", 10, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
