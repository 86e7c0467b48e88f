package businessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ainfakroun/database"
	"ainfakroun/database/repository"
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new BusinessRepository backed by the
// "businesses" collection.
func NewMongoBusinessRepo() BusinessRepository {
	return &MongoBusinessRepo{coll: database.Collection("businesses")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// listFilter builds the public listing filter. Only active records are ever
// returned; "all" disables the category constraint.
func listFilter(c ListCriteria) bson.M {
	filter := bson.M{"isActive": true}
	if c.Category != "" && c.Category != "all" {
		filter["category"] = c.Category
	}
	if c.Search != "" {
		filter["$text"] = bson.M{"$search": c.Search}
	}
	return filter
}

// listSort keeps the newest businesses first.
func listSort() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}

func (r *MongoBusinessRepo) List(criteria ListCriteria) ([]models.Business, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := listFilter(criteria)
	opts := options.Find().
		SetSort(listSort()).
		SetSkip((criteria.Page - 1) * criteria.Limit).
		SetLimit(criteria.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer cursor.Close(ctx)

	businesses := []models.Business{}
	for cursor.Next(ctx) {
		var b models.Business
		if err := cursor.Decode(&b); err != nil {
			return nil, 0, fmt.Errorf("failed to decode business: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return businesses, total, nil
}

func (r *MongoBusinessRepo) GetByID(id primitive.ObjectID) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&business); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch business %s: %w", id.Hex(), err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) Create(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, business)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		business.ID = oid
	}
	return nil
}

// UpdateByID applies a partial $set and returns the updated document.
// Omitted fields keep their prior values.
func (r *MongoBusinessRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Business
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update business %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

func (r *MongoBusinessRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete business %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
