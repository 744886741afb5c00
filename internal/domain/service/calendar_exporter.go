package service

import (
	"tourgenius/internal/domain/entity"
)

// CalendarExporter defines the interface for exporting an itinerary to an
// interchange calendar format consumable by external calendar applications.
type CalendarExporter interface {
	// ExportICS renders the itinerary as an iCalendar document with one
	// all-day event per trip day.
	ExportICS(itinerary *entity.Itinerary) ([]byte, error)
}
