// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a tour-operator account. Itineraries, invoices, and customers are
// all scoped to the owning user.
type User struct {
	ID           uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"` // Login identifier, unique.
	Name         string    `json:"name"`  // Display name.
	PasswordHash string    `json:"-"`     // Bcrypt hash; never serialized.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is a persisted session record backing JWT refresh.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"` // SHA-256 of the opaque token value.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
