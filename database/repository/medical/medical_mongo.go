package medicalRepo

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

// ListCriteria carries the medical directory filters. Emergency narrows the
// listing to facilities with 24h emergency service.
type ListCriteria struct {
	Search    string
	Type      string
	Emergency bool
	Page      int64
	Limit     int64
}

// MedicalRepository defines persistence operations for medical facilities.
type MedicalRepository interface {
	List(criteria ListCriteria) ([]models.Medical, int64, error)
	GetByID(id primitive.ObjectID) (*models.Medical, error)
	Create(facility *models.Medical) error
	UpdateByID(id primitive.ObjectID, set bson.M) (*models.Medical, error)
	Delete(id primitive.ObjectID) error
	EnsureIndexes() error
}

// MongoMedicalRepo implements MedicalRepository using MongoDB.
type MongoMedicalRepo struct {
	coll *mongo.Collection
}

// NewMongoMedicalRepo creates a new MedicalRepository backed by the
// "medicals" collection.
func NewMongoMedicalRepo() MedicalRepository {
	return &MongoMedicalRepo{coll: database.Collection("medicals")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func listFilter(c ListCriteria) bson.M {
	filter := bson.M{"isActive": true}
	if c.Type != "" && c.Type != "all" {
		filter["type"] = c.Type
	}
	if c.Emergency {
		filter["isEmergency24h"] = true
	}
	if c.Search != "" {
		filter["$text"] = bson.M{"$search": c.Search}
	}
	return filter
}

// listSort surfaces emergency-capable facilities before the alphabetical
// remainder.
func listSort() bson.D {
	return bson.D{
		{Key: "isEmergency24h", Value: -1},
		{Key: "name", Value: 1},
	}
}

func (r *MongoMedicalRepo) List(criteria ListCriteria) ([]models.Medical, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := listFilter(criteria)
	opts := options.Find().
		SetSort(listSort()).
		SetSkip((criteria.Page - 1) * criteria.Limit).
		SetLimit(criteria.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list medical facilities: %w", err)
	}
	defer cursor.Close(ctx)

	facilities := []models.Medical{}
	for cursor.Next(ctx) {
		var m models.Medical
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("failed to decode medical facility: %w", err)
		}
		facilities = append(facilities, m)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count medical facilities: %w", err)
	}
	return facilities, total, nil
}

func (r *MongoMedicalRepo) GetByID(id primitive.ObjectID) (*models.Medical, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var facility models.Medical
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&facility); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch medical facility %s: %w", id.Hex(), err)
	}
	return &facility, nil
}

func (r *MongoMedicalRepo) Create(facility *models.Medical) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, facility)
	if err != nil {
		return fmt.Errorf("failed to create medical facility: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		facility.ID = oid
	}
	return nil
}

func (r *MongoMedicalRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.Medical, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Medical
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update medical facility %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

func (r *MongoMedicalRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete medical facility %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the text index (specialty included, unlike the other
// directories) and the filter/sort indexes.
func (r *MongoMedicalRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "nameAr", Value: "text"},
			{Key: "nameFr", Value: "text"},
			{Key: "specialty", Value: "text"},
		}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "isEmergency24h", Value: -1}, {Key: "name", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create medical indexes: %w", err)
	}
	return nil
}
