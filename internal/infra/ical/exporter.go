// Package ical renders itineraries as iCalendar documents.
package ical

import (
	"fmt"
	"time"

	"tourgenius/internal/domain/entity"
	"tourgenius/internal/domain/pricing"
	"tourgenius/internal/domain/service"
	"tourgenius/internal/errors"

	ics "github.com/arran4/golang-ical"
)

type icalExporter struct{}

// NewICalExporter creates a CalendarExporter backed by the iCalendar format.
func NewICalExporter() service.CalendarExporter {
	return &icalExporter{}
}

// ExportICS renders the itinerary as an iCalendar document with one all-day
// VEVENT per trip day. The first event carries the full text summary as its
// description so calendar clients show the complete plan.
func (e *icalExporter) ExportICS(itinerary *entity.Itinerary) ([]byte, error) {
	if itinerary == nil {
		return nil, errors.New("itinerary must not be nil")
	}

	start := time.Now()
	if itinerary.StartDate != nil {
		start = *itinerary.StartDate
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TourGenius//Itinerary//EN")

	summary := pricing.BuildSummary(itinerary)
	now := time.Now()

	for i, day := range itinerary.Days {
		dayStart := start.AddDate(0, 0, i)

		event := cal.AddEvent(fmt.Sprintf("%s-day-%d@tourgenius", itinerary.ID, day.Day))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(dayStart)
		event.SetAllDayEndAt(dayStart.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s - Day %d", itinerary.Name, day.Day))
		if day.Hotel != nil {
			event.SetLocation(day.Hotel.Location)
		}
		if i == 0 {
			event.SetDescription(summary)
		}
	}

	return []byte(cal.Serialize()), nil
}
