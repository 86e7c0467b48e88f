package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrayerTimes holds the daily prayer schedule, each slot an "HH:MM" string.
// Slots left empty are simply not announced for that mosque.
type PrayerTimes struct {
	Fajr    string `bson:"fajr,omitempty" json:"fajr,omitempty"`
	Dhuhr   string `bson:"dhuhr,omitempty" json:"dhuhr,omitempty"`
	Asr     string `bson:"asr,omitempty" json:"asr,omitempty"`
	Maghrib string `bson:"maghrib,omitempty" json:"maghrib,omitempty"`
	Isha    string `bson:"isha,omitempty" json:"isha,omitempty"`
	Jumua   string `bson:"jumua,omitempty" json:"jumua,omitempty"`
}

// Mosque represents a mosque listing with its prayer schedule.
type Mosque struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	NameAr        string             `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	NameFr        string             `bson:"nameFr,omitempty" json:"nameFr,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string             `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	Address       string             `bson:"address" json:"address"`
	AddressAr     string             `bson:"addressAr,omitempty" json:"addressAr,omitempty"`
	Latitude      *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Imam          string             `bson:"imam,omitempty" json:"imam,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PrayerTimes   *PrayerTimes       `bson:"prayerTimes,omitempty" json:"prayerTimes,omitempty"`
	Facilities    []string           `bson:"facilities" json:"facilities"`
	Images        []string           `bson:"images" json:"images"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
