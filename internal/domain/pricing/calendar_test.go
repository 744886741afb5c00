package pricing

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"tourgenius/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGoogleCalendarLink_Params(t *testing.T) {
	it := referenceItinerary()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	it.StartDate = &start
	it.Days = append(it.Days, entity.DayPlan{Day: 2}, entity.DayPlan{Day: 3})

	link := BuildGoogleCalendarLink(it)
	require.True(t, strings.HasPrefix(link, "https://calendar.google.com/calendar/render?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "TEMPLATE", params.Get("action"))
	assert.Equal(t, "Tour: Bali Highlights", params.Get("text"))
	assert.Equal(t, BuildSummary(it), params.Get("details"))
	// three days: the all-day range ends two days after the start
	assert.Equal(t, "20260301/20260303", params.Get("dates"))
}

func TestBuildGoogleCalendarLink_SingleDayRange(t *testing.T) {
	it := referenceItinerary()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	it.StartDate = &start

	link := BuildGoogleCalendarLink(it)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "20260301/20260301", parsed.Query().Get("dates"))
}

func TestBuildGoogleCalendarLink_NoStartDateFallsBackToToday(t *testing.T) {
	it := referenceItinerary()
	it.StartDate = nil

	link := BuildGoogleCalendarLink(it)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	today := time.Now().Format("20060102")
	assert.Equal(t, today+"/"+today, parsed.Query().Get("dates"))
}

func TestBuildGoogleCalendarLink_Deterministic(t *testing.T) {
	it := referenceItinerary()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	it.StartDate = &start

	assert.Equal(t, BuildGoogleCalendarLink(it), BuildGoogleCalendarLink(it))
}
