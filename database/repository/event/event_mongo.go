package eventRepo

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

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new EventRepository backed by the "events"
// collection.
func NewMongoEventRepo() EventRepository {
	return &MongoEventRepo{coll: database.Collection("events")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func listFilter(c ListCriteria) bson.M {
	filter := bson.M{"isActive": true}
	if c.Category != "" && c.Category != "all" {
		filter["category"] = c.Category
	}
	if c.Upcoming {
		now := c.Now
		if now.IsZero() {
			now = time.Now()
		}
		filter["startDate"] = bson.M{"$gte": now}
	}
	if c.Featured {
		filter["isFeatured"] = true
	}
	if c.Search != "" {
		filter["$text"] = bson.M{"$search": c.Search}
	}
	return filter
}

// listSort orders upcoming events soonest-first; everything else shows the
// most recent events first.
func listSort(upcoming bool) bson.D {
	if upcoming {
		return bson.D{{Key: "startDate", Value: 1}}
	}
	return bson.D{{Key: "startDate", Value: -1}}
}

func (r *MongoEventRepo) List(criteria ListCriteria) ([]models.Event, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := listFilter(criteria)
	opts := options.Find().
		SetSort(listSort(criteria.Upcoming)).
		SetSkip((criteria.Page - 1) * criteria.Limit).
		SetLimit(criteria.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	for cursor.Next(ctx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, 0, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}
	return events, total, nil
}

func (r *MongoEventRepo) GetByID(id primitive.ObjectID) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event %s: %w", id.Hex(), err)
	}
	return &event, nil
}

func (r *MongoEventRepo) Create(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return nil
}

func (r *MongoEventRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Event
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

func (r *MongoEventRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the text index over the bilingual title/description
// fields plus the category and startDate indexes used by list queries.
func (r *MongoEventRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "titleAr", Value: "text"},
			{Key: "titleFr", Value: "text"},
			{Key: "description", Value: "text"},
		}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "startDate", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
