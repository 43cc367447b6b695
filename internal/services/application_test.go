package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/db/dbtest"
	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/pkg/metrics"
)

// loginAs issues a real session through the auth service and returns
// the token.
func loginAs(t *testing.T, svc *AuthService, email string) string {
	t.Helper()
	result, err := svc.Login(context.Background(), email, "", "")
	require.NoError(t, err)
	return result.Token
}

func newApplicationService(t *testing.T, store db.Store) (*ApplicationService, *AuthService) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	collector := metrics.NewCollector()
	auth := NewAuthService(store, logger, collector)
	return NewApplicationService(store, auth, logger, collector), auth
}

func TestCreateApplicationForcesDraft(t *testing.T) {
	store := dbtest.New()
	svc, auth := newApplicationService(t, store)
	token := loginAs(t, auth, "asha@example.com")

	result, err := svc.Create(context.Background(), token, models.DocPAN, map[string]interface{}{
		"status": "approved", // ignored: status is not part of the request contract
		"note":   "first filing",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, models.StatusDraft, result.Status)

	apps := store.All(db.CollectionApplications)
	require.Len(t, apps, 1)
	assert.Equal(t, "draft", apps[0]["status"])
	assert.Equal(t, "asha@example.com", apps[0]["user_email"])
}

func TestCreateApplicationRejectsUnknownDocType(t *testing.T) {
	store := dbtest.New()
	svc, auth := newApplicationService(t, store)
	token := loginAs(t, auth, "asha@example.com")
	writesBefore := store.WriteCount

	_, err := svc.Create(context.Background(), token, "ration-card", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, writesBefore, store.WriteCount)
}

func TestCreateApplicationRequiresValidToken(t *testing.T) {
	store := dbtest.New()
	svc, _ := newApplicationService(t, store)

	_, err := svc.Create(context.Background(), "bogus", models.DocPAN, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Create(context.Background(), "", models.DocPAN, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListApplicationsIsCallerScoped(t *testing.T) {
	store := dbtest.New()
	svc, auth := newApplicationService(t, store)
	ashaToken := loginAs(t, auth, "asha@example.com")
	raviToken := loginAs(t, auth, "ravi@example.com")

	shared := map[string]interface{}{"city": "Pune"}
	_, err := svc.Create(context.Background(), ashaToken, models.DocAadhaar, shared)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), raviToken, models.DocVoter, shared)
	require.NoError(t, err)

	items, err := svc.List(context.Background(), ashaToken)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "asha@example.com", items[0]["user_email"])
	assert.Equal(t, "aadhaar", items[0]["doc_type"])

	id, ok := items[0]["_id"].(string)
	require.True(t, ok, "store identifiers must be rendered as plain strings")
	assert.NotEmpty(t, id)
}

func TestListApplicationsCappedAtFifty(t *testing.T) {
	store := dbtest.New()
	svc, auth := newApplicationService(t, store)
	token := loginAs(t, auth, "asha@example.com")

	for i := 0; i < listApplicationsLimit+10; i++ {
		_, err := store.Create(context.Background(), db.CollectionApplications, models.Application{
			UserEmail: "asha@example.com",
			DocType:   models.DocDL,
			Status:    models.StatusDraft,
			Metadata:  map[string]interface{}{"n": fmt.Sprint(i)},
		})
		require.NoError(t, err)
	}

	items, err := svc.List(context.Background(), token)
	require.NoError(t, err)
	assert.Len(t, items, listApplicationsLimit)
}

func TestListApplicationsExpiredToken(t *testing.T) {
	store := dbtest.New()
	svc, auth := newApplicationService(t, store)
	token := loginAs(t, auth, "asha@example.com")

	auth.now = func() time.Time { return time.Now().Add(models.SessionTTL + time.Minute) }

	_, err := svc.List(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
