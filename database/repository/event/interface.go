package eventRepo

import (
	"time"

	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListCriteria carries the event listing filters. Now anchors the
// "upcoming" cutoff; when zero the current time is used.
type ListCriteria struct {
	Search   string
	Category string
	Upcoming bool
	Featured bool
	Now      time.Time

	Page  int64
	Limit int64
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	List(criteria ListCriteria) ([]models.Event, int64, error)
	GetByID(id primitive.ObjectID) (*models.Event, error)
	Create(event *models.Event) error
	UpdateByID(id primitive.ObjectID, set bson.M) (*models.Event, error)
	Delete(id primitive.ObjectID) error
	EnsureIndexes() error
}
