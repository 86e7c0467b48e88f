package mosqueRepo

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

// ListCriteria carries the mosque listing filters. Mosques have no category
// axis; only free-text search applies.
type ListCriteria struct {
	Search string
	Page   int64
	Limit  int64
}

// MosqueRepository defines persistence operations for mosques.
type MosqueRepository interface {
	List(criteria ListCriteria) ([]models.Mosque, int64, error)
	GetByID(id primitive.ObjectID) (*models.Mosque, error)
	Create(mosque *models.Mosque) error
	UpdateByID(id primitive.ObjectID, set bson.M) (*models.Mosque, error)
	Delete(id primitive.ObjectID) error
	EnsureIndexes() error
}

// MongoMosqueRepo implements MosqueRepository using MongoDB.
type MongoMosqueRepo struct {
	coll *mongo.Collection
}

// NewMongoMosqueRepo creates a new MosqueRepository backed by the "mosques"
// collection.
func NewMongoMosqueRepo() MosqueRepository {
	return &MongoMosqueRepo{coll: database.Collection("mosques")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func listFilter(c ListCriteria) bson.M {
	filter := bson.M{"isActive": true}
	if c.Search != "" {
		filter["$text"] = bson.M{"$search": c.Search}
	}
	return filter
}

// listSort keeps mosques alphabetical.
func listSort() bson.D {
	return bson.D{{Key: "name", Value: 1}}
}

func (r *MongoMosqueRepo) List(criteria ListCriteria) ([]models.Mosque, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := listFilter(criteria)
	opts := options.Find().
		SetSort(listSort()).
		SetSkip((criteria.Page - 1) * criteria.Limit).
		SetLimit(criteria.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mosques: %w", err)
	}
	defer cursor.Close(ctx)

	mosques := []models.Mosque{}
	for cursor.Next(ctx) {
		var m models.Mosque
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("failed to decode mosque: %w", err)
		}
		mosques = append(mosques, m)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count mosques: %w", err)
	}
	return mosques, total, nil
}

func (r *MongoMosqueRepo) GetByID(id primitive.ObjectID) (*models.Mosque, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var mosque models.Mosque
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mosque); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch mosque %s: %w", id.Hex(), err)
	}
	return &mosque, nil
}

func (r *MongoMosqueRepo) Create(mosque *models.Mosque) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mosque)
	if err != nil {
		return fmt.Errorf("failed to create mosque: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		mosque.ID = oid
	}
	return nil
}

func (r *MongoMosqueRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.Mosque, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Mosque
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update mosque %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

func (r *MongoMosqueRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete mosque %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the bilingual name text index and the alphabetical
// sort index.
func (r *MongoMosqueRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "nameAr", Value: "text"},
			{Key: "nameFr", Value: "text"},
		}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create mosque indexes: %w", err)
	}
	return nil
}
