package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItineraryModel mirrors the 'itineraries' table. Day plans and the guide
// roster are stored as JSONB documents; they always travel with the itinerary
// and are never queried row by row.
type ItineraryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfPeople int       `gorm:"not null;default:1"`
	StartDate      *time.Time
	Days           datatypes.JSON `gorm:"type:jsonb"`
	TourGuides     datatypes.JSON `gorm:"type:jsonb"`
	TotalPrice     float64        `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ItineraryModel) TableName() string {
	return "itineraries"
}
