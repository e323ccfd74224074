package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextSequence atomically increments and returns the named counter from the
// counters collection. Counters start at 1 and survive restarts, which keeps
// ids monotonic across process lifetimes.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int, error) {
	var doc struct {
		Value int `bson:"value"`
	}

	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}
