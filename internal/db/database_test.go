package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDisconnectedStoreReportsUnavailable(t *testing.T) {
	store := &MongoStore{}
	ctx := context.Background()

	_, err := store.Create(ctx, CollectionUsers, bson.M{"email": "a@b.c"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.Query(ctx, CollectionSessions, bson.M{}, 1)
	assert.ErrorIs(t, err, ErrUnavailable)

	err = store.UpsertIfAbsent(ctx, CollectionUsers, bson.M{}, bson.M{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.Collections(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, store.Ping(ctx), ErrUnavailable)
	assert.NoError(t, store.Disconnect(ctx), "disconnecting a dead store is a no-op")
}
