// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType categorizes a meal within a day plan.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// TransportationType is informational only; it never affects pricing.
type TransportationType string

const (
	TransportFlight TransportationType = "flight"
	TransportTrain  TransportationType = "train"
	TransportBus    TransportationType = "bus"
	TransportCar    TransportationType = "car"
	TransportFerry  TransportationType = "ferry"
)

// Itinerary is the root aggregate of the tour-planning domain. Days are kept
// in chronological order; insertion order within a day is preserved because the
// text summary is rendered from it.
type Itinerary struct {
	ID             uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the itinerary.
	UserID         uuid.UUID   `json:"user_id"`          // The ID of the tour operator who owns this itinerary.
	Name           string      `json:"name"`             // Display name, e.g. "Bali Highlights".
	NumberOfPeople int         `json:"number_of_people"` // Multiplies every per-person price. Always >= 1.
	StartDate      *time.Time  `json:"start_date"`       // Optional first day of the tour.
	Days           []DayPlan   `json:"days"`             // Ordered day plans; position = chronological day order.
	TourGuides     []TourGuide `json:"tour_guides"`      // Guides assigned to the whole trip. Names unique case-insensitively.
	TotalPrice     float64     `json:"total_price"`      // Grand total recomputed on every save; never trusted from the client.
	CreatedAt      time.Time   `json:"created_at"`       // Timestamp of when this itinerary was created.
	UpdatedAt      time.Time   `json:"updated_at"`       // Timestamp of the last modification.
}

// DayPlan is one unit of the trip. Collections start empty and optionals nil;
// the day is mutated incrementally as the operator adds and removes items.
type DayPlan struct {
	Day            int             `json:"day"`            // 1-based position, renumbered after day removal.
	Destinations   []Destination   `json:"destinations"`   // Zero or more destinations, insertion order.
	Hotel          *Hotel          `json:"hotel"`          // At most one hotel per day.
	Meals          []Meal          `json:"meals"`          // Zero or more meals, insertion order.
	Transportation *Transportation `json:"transportation"` // At most one transportation per day.
}

// Destination is a visited attraction, priced per person.
type Destination struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"price_per_person"`
}

// Hotel is an overnight stay. The nightly price is charged once per day
// regardless of the number of people.
type Hotel struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Stars         int     `json:"stars"` // Conventionally 1-5, not enforced here.
	PricePerNight float64 `json:"price_per_night"`
}

// Meal is a catered meal, priced per person.
type Meal struct {
	Type           MealType `json:"type"`
	Description    string   `json:"description"`
	PricePerPerson float64  `json:"price_per_person"`
}

// Transportation is a transfer leg, priced per person.
type Transportation struct {
	Type           TransportationType `json:"type"`
	Description    string             `json:"description"`
	PricePerPerson float64            `json:"price_per_person"`
}

// TourGuide accompanies the trip. A guide is charged per day for the full trip
// length; there is no per-day assignment in the model.
type TourGuide struct {
	Name        string   `json:"name"`
	Expertise   string   `json:"expertise"`
	Languages   []string `json:"languages"`
	PricePerDay float64  `json:"price_per_day"`
}
