package pricing

import (
	"testing"

	"tourgenius/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceItinerary() *entity.Itinerary {
	return &entity.Itinerary{
		Name:           "Bali Highlights",
		NumberOfPeople: 2,
		Days: []entity.DayPlan{
			{
				Day: 1,
				Destinations: []entity.Destination{
					{Name: "Uluwatu Temple", PricePerPerson: 100000},
				},
				Hotel: &entity.Hotel{Name: "Grand Hotel", Location: "Kuta", Stars: 5, PricePerNight: 500000},
				Meals: []entity.Meal{
					{Type: entity.MealLunch, Description: "Seafood Lunch", PricePerPerson: 75000},
				},
				Transportation: &entity.Transportation{Type: entity.TransportCar, Description: "Private Car", PricePerPerson: 200000},
			},
		},
		TourGuides: []entity.TourGuide{
			{Name: "Made Wira", Expertise: "Culture", PricePerDay: 150000},
		},
		TotalPrice: 1610000,
	}
}

func TestComputeCategoryTotals_ReferenceScenario(t *testing.T) {
	totals := ComputeCategoryTotals(referenceItinerary())

	assert.Equal(t, 200000.0, totals.Destinations.Total)
	assert.Equal(t, 1, totals.Destinations.Count)
	assert.Equal(t, 500000.0, totals.Accommodation.Total)
	assert.Equal(t, 1, totals.Accommodation.Count)
	assert.Equal(t, 150000.0, totals.Meals.Total)
	assert.Equal(t, 1, totals.Meals.Count)
	assert.Equal(t, 400000.0, totals.Transportation.Total)
	assert.Equal(t, 1, totals.Transportation.Count)
	assert.Equal(t, 150000.0, totals.Guides.Total)
	assert.Equal(t, 1, totals.Guides.Count)
	assert.Equal(t, 1400000.0, totals.Subtotal())
}

func TestComputeInvoiceTotals_ReferenceScenario(t *testing.T) {
	totals := ComputeCategoryTotals(referenceItinerary())

	invoice, err := ComputeInvoiceTotals(totals, DefaultServiceFeeRate, DefaultTaxRate, 2)
	require.NoError(t, err)

	assert.Equal(t, 1400000.0, invoice.Subtotal)
	assert.Equal(t, 140000.0, invoice.ServiceFee)
	assert.Equal(t, 70000.0, invoice.Tax)
	assert.Equal(t, 1610000.0, invoice.Total)
	assert.Equal(t, 805000.0, invoice.PerPerson)
}

func TestComputeCategoryTotals_EmptyDayYieldsZero(t *testing.T) {
	it := &entity.Itinerary{
		Name:           "Empty",
		NumberOfPeople: 3,
		Days:           []entity.DayPlan{{Day: 1}},
	}

	totals := ComputeCategoryTotals(it)
	assert.Equal(t, 0.0, totals.Subtotal())

	invoice, err := ComputeInvoiceTotals(totals, DefaultServiceFeeRate, DefaultTaxRate, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, invoice.Subtotal)
	assert.Equal(t, 0.0, invoice.Total)
	assert.Equal(t, 0.0, invoice.PerPerson)
}

func TestComputeCategoryTotals_NoDaysYieldsZeroNotError(t *testing.T) {
	it := &entity.Itinerary{Name: "No days", NumberOfPeople: 2}

	totals := ComputeCategoryTotals(it)
	assert.Equal(t, 0.0, totals.Subtotal())
}

// Doubling the people count doubles destinations, meals, and transportation,
// but leaves accommodation (charged per night, not per person) untouched.
func TestComputeCategoryTotals_LinearInPeopleExceptAccommodation(t *testing.T) {
	it := referenceItinerary()
	base := ComputeCategoryTotals(it)

	it.NumberOfPeople *= 2
	doubled := ComputeCategoryTotals(it)

	assert.Equal(t, base.Destinations.Total*2, doubled.Destinations.Total)
	assert.Equal(t, base.Meals.Total*2, doubled.Meals.Total)
	assert.Equal(t, base.Transportation.Total*2, doubled.Transportation.Total)
	assert.Equal(t, base.Accommodation.Total, doubled.Accommodation.Total)
	assert.Equal(t, base.Guides.Total, doubled.Guides.Total)
}

// A guide is charged for the whole trip length, independent of which days
// they actually work: there is no per-day assignment in the model.
func TestComputeCategoryTotals_GuideChargedForFullTripLength(t *testing.T) {
	it := referenceItinerary()
	it.Days = append(it.Days, entity.DayPlan{Day: 2}, entity.DayPlan{Day: 3})

	before := ComputeCategoryTotals(it)
	it.TourGuides = append(it.TourGuides, entity.TourGuide{Name: "Ketut Ayu", PricePerDay: 200000})
	after := ComputeCategoryTotals(it)

	assert.Equal(t, before.Guides.Total+200000*3, after.Guides.Total)
	assert.Equal(t, 2, after.Guides.Count)
}

func TestComputeInvoiceTotals_FeeAndTaxDoNotCompound(t *testing.T) {
	totals := ComputeCategoryTotals(referenceItinerary())

	invoice, err := ComputeInvoiceTotals(totals, 0.10, 0.05, 2)
	require.NoError(t, err)
	assert.InDelta(t, invoice.Subtotal*(0.10+0.05), invoice.ServiceFee+invoice.Tax, 1e-9)

	// Changing only the tax rate must not move the service fee.
	higherTax, err := ComputeInvoiceTotals(totals, 0.10, 0.20, 2)
	require.NoError(t, err)
	assert.Equal(t, invoice.ServiceFee, higherTax.ServiceFee)
}

func TestComputeInvoiceTotals_TotalReconstruction(t *testing.T) {
	it := referenceItinerary()
	it.NumberOfPeople = 7
	totals := ComputeCategoryTotals(it)

	invoice, err := ComputeInvoiceTotals(totals, DefaultServiceFeeRate, DefaultTaxRate, it.NumberOfPeople)
	require.NoError(t, err)

	assert.Equal(t, invoice.Subtotal+invoice.ServiceFee+invoice.Tax, invoice.Total)
	assert.InDelta(t, invoice.Total, invoice.PerPerson*float64(it.NumberOfPeople), 1e-6)
}

func TestComputeInvoiceTotals_RejectsZeroPeople(t *testing.T) {
	totals := ComputeCategoryTotals(referenceItinerary())

	_, err := ComputeInvoiceTotals(totals, DefaultServiceFeeRate, DefaultTaxRate, 0)
	assert.ErrorIs(t, err, ErrInvalidPeopleCount)
}

// Negative amounts are passed through unchanged; the aggregator has no rule
// against discounts expressed as negative prices. Rejection happens at the
// API boundary instead.
func TestComputeCategoryTotals_NegativePricePassthrough(t *testing.T) {
	it := referenceItinerary()
	it.Days[0].Destinations = append(it.Days[0].Destinations, entity.Destination{Name: "Promo", PricePerPerson: -50000})

	totals := ComputeCategoryTotals(it)
	assert.Equal(t, 100000.0, totals.Destinations.Total) // 200000 - 2*50000
}

func TestGrandTotal(t *testing.T) {
	totals := ComputeCategoryTotals(referenceItinerary())
	assert.Equal(t, 1610000.0, GrandTotal(totals, DefaultServiceFeeRate, DefaultTaxRate))
}
