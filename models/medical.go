package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medical facility types.
const (
	MedicalTypeHospital   = "hospital"
	MedicalTypeClinic     = "clinic"
	MedicalTypePharmacy   = "pharmacy"
	MedicalTypeLaboratory = "laboratory"
	MedicalTypeDentist    = "dentist"
	MedicalTypeSpecialist = "specialist"
	MedicalTypeOther      = "other"
)

// Medical represents a medical facility (hospital, clinic, pharmacy, ...).
type Medical struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	NameAr         string             `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	NameFr         string             `bson:"nameFr,omitempty" json:"nameFr,omitempty"`
	Type           string             `bson:"type" json:"type"`
	Specialty      string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	SpecialtyAr    string             `bson:"specialtyAr,omitempty" json:"specialtyAr,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr  string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	Address        string             `bson:"address" json:"address"`
	AddressAr      string             `bson:"addressAr,omitempty" json:"addressAr,omitempty"`
	Latitude       *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Phones         []string           `bson:"phones" json:"phones"`
	EmergencyPhone string             `bson:"emergencyPhone,omitempty" json:"emergencyPhone,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Hours          string             `bson:"hours,omitempty" json:"hours,omitempty"`
	IsEmergency24h bool               `bson:"isEmergency24h" json:"isEmergency24h"`
	Doctors        []string           `bson:"doctors,omitempty" json:"doctors,omitempty"`
	Images         []string           `bson:"images" json:"images"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
