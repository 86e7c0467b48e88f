package emergencyRepo

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

// ListCriteria carries the emergency contact filters. There is no free-text
// search on this collection.
type ListCriteria struct {
	Type  string
	Page  int64
	Limit int64
}

// EmergencyRepository defines persistence operations for emergency contacts.
type EmergencyRepository interface {
	List(criteria ListCriteria) ([]models.EmergencyContact, int64, error)
	GetByID(id primitive.ObjectID) (*models.EmergencyContact, error)
	Create(contact *models.EmergencyContact) error
	UpdateByID(id primitive.ObjectID, set bson.M) (*models.EmergencyContact, error)
	Delete(id primitive.ObjectID) error
	EnsureIndexes() error
}

// MongoEmergencyRepo implements EmergencyRepository using MongoDB.
type MongoEmergencyRepo struct {
	coll *mongo.Collection
}

// NewMongoEmergencyRepo creates a new EmergencyRepository backed by the
// "emergencycontacts" collection.
func NewMongoEmergencyRepo() EmergencyRepository {
	return &MongoEmergencyRepo{coll: database.Collection("emergencycontacts")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func listFilter(c ListCriteria) bson.M {
	filter := bson.M{"isActive": true}
	if c.Type != "" && c.Type != "all" {
		filter["type"] = c.Type
	}
	return filter
}

// listSort orders by ascending priority; name breaks priority ties.
func listSort() bson.D {
	return bson.D{
		{Key: "priority", Value: 1},
		{Key: "name", Value: 1},
	}
}

func (r *MongoEmergencyRepo) List(criteria ListCriteria) ([]models.EmergencyContact, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := listFilter(criteria)
	opts := options.Find().
		SetSort(listSort()).
		SetSkip((criteria.Page - 1) * criteria.Limit).
		SetLimit(criteria.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := []models.EmergencyContact{}
	for cursor.Next(ctx) {
		var ec models.EmergencyContact
		if err := cursor.Decode(&ec); err != nil {
			return nil, 0, fmt.Errorf("failed to decode emergency contact: %w", err)
		}
		contacts = append(contacts, ec)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count emergency contacts: %w", err)
	}
	return contacts, total, nil
}

func (r *MongoEmergencyRepo) GetByID(id primitive.ObjectID) (*models.EmergencyContact, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contact models.EmergencyContact
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&contact); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch emergency contact %s: %w", id.Hex(), err)
	}
	return &contact, nil
}

func (r *MongoEmergencyRepo) Create(contact *models.EmergencyContact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to create emergency contact: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}
	return nil
}

func (r *MongoEmergencyRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.EmergencyContact, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.EmergencyContact
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update emergency contact %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

func (r *MongoEmergencyRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete emergency contact %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the filter and sort indexes for the emergency page.
func (r *MongoEmergencyRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "priority", Value: 1}, {Key: "name", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create emergency contact indexes: %w", err)
	}
	return nil
}
