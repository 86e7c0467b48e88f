package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Emergency contact types.
const (
	EmergencyTypePolice       = "police"
	EmergencyTypeFire         = "fire"
	EmergencyTypeAmbulance    = "ambulance"
	EmergencyTypeHospital     = "hospital"
	EmergencyTypeMunicipality = "municipality"
	EmergencyTypeUtility      = "utility"
	EmergencyTypeOther        = "other"
)

// DefaultEmergencyPriority is assigned when a contact is created without one.
// Lower values sort first on the emergency page.
const DefaultEmergencyPriority = 10

// EmergencyContact represents an emergency phone number shown on the
// emergency page, ordered by priority.
type EmergencyContact struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	NameAr         string             `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	NameFr         string             `bson:"nameFr,omitempty" json:"nameFr,omitempty"`
	Type           string             `bson:"type" json:"type"`
	Phone          string             `bson:"phone" json:"phone"`
	AlternatePhone string             `bson:"alternatePhone,omitempty" json:"alternatePhone,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	AddressAr      string             `bson:"addressAr,omitempty" json:"addressAr,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr  string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	IsAvailable24h bool               `bson:"isAvailable24h" json:"isAvailable24h"`
	Priority       int                `bson:"priority" json:"priority"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
