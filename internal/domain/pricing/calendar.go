package pricing

import (
	"net/url"
	"time"

	"tourgenius/internal/domain/entity"
)

const calendarBaseURL = "https://calendar.google.com/calendar/render"

// compact ISO-basic date for all-day calendar ranges
const calendarDateLayout = "20060102"

// BuildGoogleCalendarLink builds a Google Calendar event-template deep link
// for the itinerary. The link carries the tour title, the text summary as the
// event description, and an all-day date range spanning the trip: the end date
// is the start date advanced by len(days)-1. When the itinerary has no start
// date, today's date is used, so the result stays byte-identical for repeated
// calls within the same day. No network call is made; opening the URL is the
// caller's side effect.
func BuildGoogleCalendarLink(it *entity.Itinerary) string {
	start := time.Now()
	if it.StartDate != nil {
		start = *it.StartDate
	}

	span := len(it.Days) - 1
	if span < 0 {
		span = 0
	}
	end := start.AddDate(0, 0, span)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", "Tour: "+it.Name)
	params.Set("details", BuildSummary(it))
	params.Set("dates", start.Format(calendarDateLayout)+"/"+end.Format(calendarDateLayout))

	return calendarBaseURL + "?" + params.Encode()
}
