package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/internal/validate"
	"github.com/citizenhub/backend/pkg/metrics"
)

// listApplicationsLimit caps how many records a single listing returns.
const listApplicationsLimit = 50

// ApplicationService files and lists document applications for the
// authenticated citizen.
type ApplicationService struct {
	store   db.Store
	auth    *AuthService
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewApplicationService(store db.Store, auth *AuthService, logger *zap.Logger, collector *metrics.Collector) *ApplicationService {
	return &ApplicationService{
		store:   store,
		auth:    auth,
		logger:  logger.With(zap.String("service", "application")),
		metrics: collector,
	}
}

// CreateResult identifies a freshly filed application.
type CreateResult struct {
	Reference string
	Status    models.ApplicationStatus
}

// Create files a new application for the token's user. Status is
// always draft regardless of what the caller sends; metadata is stored
// opaquely without shape validation.
func (s *ApplicationService) Create(ctx context.Context, token string, docType models.DocType, metadata map[string]interface{}) (*CreateResult, error) {
	email, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if res := validate.DocType(docType); !res.OK() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, res.Error())
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	app := models.Application{
		UserEmail: email,
		DocType:   docType,
		Status:    models.StatusDraft,
		Metadata:  metadata,
	}

	ref, err := s.store.Create(ctx, db.CollectionApplications, app)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("applications_created", string(docType))
	s.logger.Info("Application filed",
		zap.String("email", email),
		zap.String("doc_type", string(docType)),
		zap.String("reference", ref))

	return &CreateResult{Reference: ref, Status: app.Status}, nil
}

// List returns the caller's applications, at most
// listApplicationsLimit of them, with store identifiers rendered as
// plain strings. Records belonging to other users are never returned.
func (s *ApplicationService) List(ctx context.Context, token string) ([]map[string]interface{}, error) {
	email, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	records, err := s.store.Query(ctx, db.CollectionApplications, bson.M{"user_email": email}, listApplicationsLimit)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		item := map[string]interface{}(record)
		if oid, ok := item["_id"].(primitive.ObjectID); ok {
			item["_id"] = oid.Hex()
		}
		items = append(items, item)
	}
	return items, nil
}
