package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// nextID returns the next sequential identifier for the named sequence using
// the counters-collection pattern: an atomic $inc on a per-sequence document.
// Identifiers therefore stay small integers, matching the API contract.
func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	return nextIDBlock(ctx, db, name, 1)
}

// nextIDBlock reserves n consecutive identifiers and returns the first one.
// Used when a sale and its line items are assigned ids in one round trip.
func nextIDBlock(ctx context.Context, db *mongo.Database, name string, n int64) (int64, error) {
	if n < 1 {
		n = 1
	}
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection(collectionCounters).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": n}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %q: %w", name, err)
	}
	return doc.Seq - n + 1, nil
}
