package businessRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes backing the directory listing: the
// bilingual text index used by free-text search plus single-field indexes
// for the category filter and the default sort.
func (r *MongoBusinessRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "nameAr", Value: "text"},
			{Key: "nameFr", Value: "text"},
			{Key: "description", Value: "text"},
		}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create business indexes: %w", err)
	}
	return nil
}
