// Package dbtest provides an in-memory db.Store for tests.
package dbtest

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/citizenhub/backend/internal/db"
)

// Store keeps documents in ordered in-memory collections and mimics
// the small slice of Mongo behavior the services rely on: insertion
// order, equality filters, $setOnInsert upserts, and ObjectID _ids.
type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	// WriteCount tallies every Create and every upsert that
	// inserted, for asserting that failed validations never write.
	WriteCount int

	// FailWith, when set, is returned by every operation.
	FailWith error
}

var _ db.Store = (*Store)(nil)

func New() *Store {
	return &Store{collections: make(map[string][]bson.M)}
}

// Unavailable returns a store where every operation fails the way a
// disconnected MongoStore does.
func Unavailable() *Store {
	return &Store{collections: make(map[string][]bson.M), FailWith: db.ErrUnavailable}
}

func (s *Store) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.FailWith != nil {
		return "", s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := toRecord(doc)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	record["_id"] = id
	s.collections[collection] = append(s.collections[collection], record)
	s.WriteCount++
	return id.Hex(), nil
}

func (s *Store) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []bson.M
	for _, record := range s.collections[collection] {
		if matchesFilter(record, filter) {
			results = append(results, record)
			if limit > 0 && int64(len(results)) == limit {
				break
			}
		}
	}
	return results, nil
}

func (s *Store) UpsertIfAbsent(ctx context.Context, collection string, filter, defaults bson.M) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.collections[collection] {
		if matchesFilter(record, filter) {
			return nil
		}
	}
	record, err := toRecord(defaults)
	if err != nil {
		return err
	}
	record["_id"] = primitive.NewObjectID()
	s.collections[collection] = append(s.collections[collection], record)
	s.WriteCount++
	return nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.FailWith
}

// All returns every document in a collection, in insertion order.
func (s *Store) All(collection string) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bson.M(nil), s.collections[collection]...)
}

// toRecord round-trips doc through bson so stored documents carry the
// same types a real Mongo decode produces (primitive.DateTime and so
// on).
func toRecord(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var record bson.M
	if err := bson.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return record, nil
}

func matchesFilter(record, filter bson.M) bool {
	for key, want := range filter {
		got, ok := record[key]
		if !ok || fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}
