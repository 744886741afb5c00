// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a client of the tour operator.
type Customer struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the customer.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the tour operator this customer belongs to.
	Name      string    `json:"name"`       // The customer's full name.
	Email     string    `json:"email"`      // The customer's contact email.
	Phone     string    `json:"phone"`      // The customer's phone number.
	Address   string    `json:"address"`    // The customer's postal address.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this customer was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
