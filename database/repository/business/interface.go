package businessRepo

import (
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListCriteria carries the public directory filters. Page and Limit are
// already normalized by the caller.
type ListCriteria struct {
	Search   string
	Category string
	Page     int64
	Limit    int64
}

// BusinessRepository defines persistence operations for businesses.
type BusinessRepository interface {
	List(criteria ListCriteria) ([]models.Business, int64, error)
	GetByID(id primitive.ObjectID) (*models.Business, error)
	Create(business *models.Business) error
	UpdateByID(id primitive.ObjectID, set bson.M) (*models.Business, error)
	Delete(id primitive.ObjectID) error
	EnsureIndexes() error
}
