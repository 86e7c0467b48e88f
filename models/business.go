package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business categories.
const (
	BusinessCategoryRestaurant = "restaurant"
	BusinessCategoryShop       = "shop"
	BusinessCategoryPharmacy   = "pharmacy"
	BusinessCategoryBank       = "bank"
	BusinessCategoryHotel      = "hotel"
	BusinessCategoryService    = "service"
	BusinessCategoryOther      = "other"
)

// Business represents a local business listed in the directory.
type Business struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	NameAr        string             `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	NameFr        string             `bson:"nameFr,omitempty" json:"nameFr,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	DescriptionFr string             `bson:"descriptionFr,omitempty" json:"descriptionFr,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Address       string             `bson:"address" json:"address"`
	AddressAr     string             `bson:"addressAr,omitempty" json:"addressAr,omitempty"`
	Latitude      *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Phones        []string           `bson:"phones" json:"phones"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Website       string             `bson:"website,omitempty" json:"website,omitempty"`
	Hours         string             `bson:"hours,omitempty" json:"hours,omitempty"`
	Images        []string           `bson:"images" json:"images"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
