package pricing

import (
	"strings"
	"testing"

	"tourgenius/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary_ReferenceScenario(t *testing.T) {
	got := BuildSummary(referenceItinerary())

	want := "Tour: Bali Highlights\n" +
		"People: 2\n" +
		"Total: Rp1.610.000\n" +
		"\nDay 1\n" +
		"  Destinations:\n" +
		"    - Uluwatu Temple (Rp100.000/person)\n" +
		"  Hotel: Grand Hotel, Kuta (Rp500.000/night)\n" +
		"  Meals:\n" +
		"    - lunch: Seafood Lunch (Rp75.000/person)\n" +
		"  Transportation: Private Car (Rp200.000/person)\n" +
		"\nTour Guides:\n" +
		"  - Made Wira (Rp150.000/day)\n"

	assert.Equal(t, want, got)
}

func TestBuildSummary_OmitsEmptySections(t *testing.T) {
	it := &entity.Itinerary{
		Name:           "Minimal",
		NumberOfPeople: 1,
		Days:           []entity.DayPlan{{Day: 1}},
	}

	got := BuildSummary(it)

	assert.Contains(t, got, "Day 1\n")
	assert.NotContains(t, got, "Destinations:")
	assert.NotContains(t, got, "Hotel:")
	assert.NotContains(t, got, "Meals:")
	assert.NotContains(t, got, "Transportation:")
	assert.NotContains(t, got, "Tour Guides:")
}

func TestBuildSummary_DaysRenderedInOrder(t *testing.T) {
	it := &entity.Itinerary{
		Name:           "Three Days",
		NumberOfPeople: 2,
		Days: []entity.DayPlan{
			{Day: 1, Destinations: []entity.Destination{{Name: "Alpha", PricePerPerson: 1000}}},
			{Day: 2, Destinations: []entity.Destination{{Name: "Beta", PricePerPerson: 1000}}},
			{Day: 3, Destinations: []entity.Destination{{Name: "Gamma", PricePerPerson: 1000}}},
		},
	}

	got := BuildSummary(it)

	first := strings.Index(got, "Day 1")
	second := strings.Index(got, "Day 2")
	third := strings.Index(got, "Day 3")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestBuildSummary_TotalFollowsStoredPrice(t *testing.T) {
	// An operator configured with different fee/tax rates persists a different
	// grand total; the summary must show that figure, not one recomputed with
	// the default rates.
	it := referenceItinerary()
	it.TotalPrice = 1680000 // e.g. 15% service fee + 5% tax on the same subtotal

	got := BuildSummary(it)

	assert.Contains(t, got, "Total: Rp1.680.000\n")
	assert.NotContains(t, got, "Rp1.610.000")
}

func TestBuildSummary_Deterministic(t *testing.T) {
	it := referenceItinerary()
	assert.Equal(t, BuildSummary(it), BuildSummary(it))
}
