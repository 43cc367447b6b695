package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/citizenhub/backend/internal/config"
	"github.com/citizenhub/backend/pkg/metrics"
)

// ErrUnavailable is returned by every store operation when the
// document store is unreachable or was never configured.
var ErrUnavailable = errors.New("document store unavailable")

// Store is the document-store contract the service layer depends on.
// Records are flat key-value documents addressed by collection name.
type Store interface {
	// Create inserts doc and returns its identifier as a hex string.
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	// Query returns up to limit documents matching filter, in
	// store-defined order.
	Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	// UpsertIfAbsent inserts defaults only when no document matches
	// filter; an existing match is left untouched.
	UpsertIfAbsent(ctx context.Context, collection string, filter, defaults bson.M) error
	// Collections lists collection names, for the health probe.
	Collections(ctx context.Context) ([]string, error)
	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}

// MongoStore implements Store on a MongoDB database. A zero MongoStore
// (nil database) reports ErrUnavailable from every method, which keeps
// the HTTP surface up when the store is down at boot.
type MongoStore struct {
	database *mongo.Database
	metrics  *metrics.Collector
}

// Initialize connects to MongoDB and pings it. On any failure it
// returns a disconnected store alongside the error so the caller can
// keep serving with the store marked unavailable.
func Initialize(ctx context.Context, cfg config.DatabaseConfig, collector *metrics.Collector) (*MongoStore, error) {
	timeout := time.Duration(cfg.Timeout) * time.Second
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return &MongoStore{metrics: collector}, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return &MongoStore{metrics: collector}, fmt.Errorf("failed to ping document store: %w", err)
	}

	return &MongoStore{
		database: client.Database(cfg.Name),
		metrics:  collector,
	}, nil
}

func (m *MongoStore) observe(op string, start time.Time) {
	if m.metrics != nil {
		m.metrics.ObserveLatency("store_"+op, time.Since(start))
	}
}

func (m *MongoStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if m.database == nil {
		return "", ErrUnavailable
	}
	defer m.observe("create", time.Now())

	res, err := m.database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (m *MongoStore) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if m.database == nil {
		return nil, ErrUnavailable
	}
	defer m.observe("query", time.Now())

	cursor, err := m.database.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var records []bson.M
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s records: %w", collection, err)
	}
	return records, nil
}

func (m *MongoStore) UpsertIfAbsent(ctx context.Context, collection string, filter, defaults bson.M) error {
	if m.database == nil {
		return ErrUnavailable
	}
	defer m.observe("upsert", time.Now())

	_, err := m.database.Collection(collection).UpdateOne(ctx,
		filter,
		bson.M{"$setOnInsert": defaults},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert into %s: %w", collection, err)
	}
	return nil
}

func (m *MongoStore) Collections(ctx context.Context) ([]string, error) {
	if m.database == nil {
		return nil, ErrUnavailable
	}
	return m.database.ListCollectionNames(ctx, bson.M{})
}

func (m *MongoStore) Ping(ctx context.Context) error {
	if m.database == nil {
		return ErrUnavailable
	}
	return m.database.Client().Ping(ctx, nil)
}

// Disconnect releases the underlying client. Safe on a disconnected
// store.
func (m *MongoStore) Disconnect(ctx context.Context) error {
	if m.database == nil {
		return nil
	}
	return m.database.Client().Disconnect(ctx)
}
