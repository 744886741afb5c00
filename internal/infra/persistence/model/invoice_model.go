package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvoiceModel mirrors the 'invoices' table. Line items are a JSONB snapshot
// frozen at generation time.
type InvoiceModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_user_number,priority:1"`
	ItineraryID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Number        string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_invoices_user_number,priority:2"`
	CustomerName  string         `gorm:"type:varchar(100)"`
	CustomerEmail string         `gorm:"type:varchar(255)"`
	Date          time.Time      `gorm:"not null"`
	DueDate       time.Time      `gorm:"not null"`
	Items         datatypes.JSON `gorm:"type:jsonb"`
	Subtotal      float64        `gorm:"type:decimal(14,2);not null"`
	ServiceFee    float64        `gorm:"type:decimal(14,2);not null"`
	Tax           float64        `gorm:"type:decimal(14,2);not null"`
	Total         float64        `gorm:"type:decimal(14,2);not null"`
	Status        string         `gorm:"type:varchar(16);not null;default:'draft'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
