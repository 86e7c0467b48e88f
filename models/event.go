package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event categories.
const (
	EventCategorySports      = "sports"
	EventCategoryCultural    = "cultural"
	EventCategoryReligious   = "religious"
	EventCategoryEducational = "educational"
	EventCategoryCommunity   = "community"
	EventCategoryOther       = "other"
)

// Event represents a municipal event announcement.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	TitleAr       string             `bson:"titleAr,omitempty" json:"titleAr,omitempty"`
	TitleFr       string             `bson:"titleFr,omitempty" json:"titleFr,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	DescriptionFr string             `bson:"descriptionFr,omitempty" json:"descriptionFr,omitempty"`
	Category      string             `bson:"category" json:"category"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	EndDate       *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Location      string             `bson:"location" json:"location"`
	LocationAr    string             `bson:"locationAr,omitempty" json:"locationAr,omitempty"`
	Latitude      *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Organizer     string             `bson:"organizer,omitempty" json:"organizer,omitempty"`
	ContactPhone  string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail  string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	Images        []string           `bson:"images" json:"images"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	IsFeatured    bool               `bson:"isFeatured" json:"isFeatured"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
