package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/internal/validate"
	"github.com/citizenhub/backend/pkg/metrics"
)

// AuthService issues session tokens on login and validates them for
// the protected routes. Sessions live in the document store; nothing
// is cached in-process.
type AuthService struct {
	store   db.Store
	logger  *zap.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

func NewAuthService(store db.Store, logger *zap.Logger, collector *metrics.Collector) *AuthService {
	return &AuthService{
		store:   store,
		logger:  logger.With(zap.String("service", "auth")),
		metrics: collector,
		now:     time.Now,
	}
}

// LoginResult is what a successful login hands back to the caller.
// Name echoes the request, not the stored user.
type LoginResult struct {
	Token string
	Email string
	Name  string
}

// Login upserts the user (create-only: an existing account keeps its
// name and language) and issues a fresh session valid for SessionTTL.
// Prior sessions for the same email stay valid until they expire.
func (as *AuthService) Login(ctx context.Context, email, name string, lang models.Language) (*LoginResult, error) {
	if res := validate.Email(email); !res.OK() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, res.Error())
	}
	if res := validate.Language(lang); !res.OK() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, res.Error())
	}

	storedName := name
	if storedName == "" {
		storedName = "Citizen"
	}
	storedLang := lang
	if storedLang == "" {
		storedLang = models.LangEnglish
	}

	err := as.store.UpsertIfAbsent(ctx, db.CollectionUsers,
		bson.M{"email": email},
		bson.M{
			"name":               storedName,
			"email":              email,
			"preferred_language": storedLang,
			"is_active":          true,
		},
	)
	if err != nil {
		return nil, err
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := models.Session{
		UserEmail: email,
		Token:     token,
		ExpiresAt: as.now().UTC().Add(models.SessionTTL),
	}
	if _, err := as.store.Create(ctx, db.CollectionSessions, session); err != nil {
		return nil, err
	}

	as.metrics.IncrementCounter("logins", "success")
	as.logger.Info("Session issued", zap.String("email", email))

	return &LoginResult{Token: token, Email: email, Name: name}, nil
}

// Authenticate resolves token to the bound user email. It fails with
// ErrUnauthorized for an empty token, an unknown token, or a session
// whose expiry is at or before now. There is no sliding renewal.
func (as *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	records, err := as.store.Query(ctx, db.CollectionSessions, bson.M{"token": token}, 1)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrUnauthorized
	}

	expiry, ok := recordTime(records[0], "expires_at")
	if !ok || !expiry.After(as.now().UTC()) {
		return "", ErrUnauthorized
	}

	email, _ := records[0]["user_email"].(string)
	if email == "" {
		return "", ErrUnauthorized
	}
	return email, nil
}

// newToken returns 128 bits of randomness as 32 hex characters.
// Collisions are not checked; uniqueness holds by construction.
func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// recordTime reads a timestamp field from a raw store record. Mongo
// decodes timestamps as primitive.DateTime; fakes hand back time.Time.
func recordTime(record bson.M, field string) (time.Time, bool) {
	switch v := record[field].(type) {
	case time.Time:
		return v, true
	case primitive.DateTime:
		return v.Time(), true
	}
	return time.Time{}, false
}
