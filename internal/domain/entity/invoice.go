// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus tracks the invoice lifecycle: draft -> sent -> paid.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// Invoice is a billing document generated from an itinerary's pricing
// breakdown. Line items are frozen at generation time; editing the itinerary
// afterwards does not alter an existing invoice.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`             // The Global Unique Identifier (GUID) for the invoice.
	UserID        uuid.UUID     `json:"user_id"`        // The ID of the tour operator who issued the invoice.
	ItineraryID   uuid.UUID     `json:"itinerary_id"`   // The itinerary this invoice was generated from.
	Number        string        `json:"number"`         // Human-readable invoice number, e.g. "INV-2026-4821".
	CustomerName  string        `json:"customer_name"`  // Billed customer's name.
	CustomerEmail string        `json:"customer_email"` // Billed customer's email.
	Date          time.Time     `json:"date"`           // Invoice issue date.
	DueDate       time.Time     `json:"due_date"`       // Payment due date.
	Items         []InvoiceItem `json:"items"`          // Category line items plus fee and tax rows.
	Subtotal      float64       `json:"subtotal"`       // Sum of category totals before fee and tax.
	ServiceFee    float64       `json:"service_fee"`    // Service fee computed off the subtotal.
	Tax           float64       `json:"tax"`            // Tax computed off the subtotal, not compounded on the fee.
	Total         float64       `json:"total"`          // Subtotal + service fee + tax.
	Status        InvoiceStatus `json:"status"`         // Current lifecycle state.
	CreatedAt     time.Time     `json:"created_at"`     // Timestamp of when this invoice was created.
	UpdatedAt     time.Time     `json:"updated_at"`     // Timestamp of the last modification.
}

// InvoiceItem is a single line on the invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
