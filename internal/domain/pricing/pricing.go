// Package pricing computes the monetary breakdown of an itinerary. Every
// function here is a pure fold over the itinerary snapshot: no I/O, no shared
// state, safe to call concurrently. Callers re-derive all outputs from the
// current snapshot on every edit instead of patching previous results.
package pricing

import (
	"tourgenius/internal/domain/entity"
	"tourgenius/internal/errors"
)

// Default rates applied when the operator has not configured their own.
const (
	DefaultServiceFeeRate = 0.10
	DefaultTaxRate        = 0.05
)

// ErrInvalidPeopleCount is returned when a per-person figure is requested for
// an itinerary with fewer than one traveler.
var ErrInvalidPeopleCount = errors.New("number of people must be at least 1")

// CategoryTotal is one category's contribution to the subtotal. Count is the
// number of contributing line items and is used for display only.
type CategoryTotal struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// CategoryTotals is the per-category breakdown of an itinerary.
type CategoryTotals struct {
	Destinations   CategoryTotal `json:"destinations"`
	Accommodation  CategoryTotal `json:"accommodation"`
	Meals          CategoryTotal `json:"meals"`
	Transportation CategoryTotal `json:"transportation"`
	Guides         CategoryTotal `json:"guides"`
}

// Subtotal is the sum of all category totals, before service fee and tax.
func (ct CategoryTotals) Subtotal() float64 {
	return ct.Destinations.Total +
		ct.Accommodation.Total +
		ct.Meals.Total +
		ct.Transportation.Total +
		ct.Guides.Total
}

// InvoiceTotals is the invoice-level rollup derived from the category totals.
type InvoiceTotals struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
	PerPerson  float64 `json:"per_person"`
}

// ComputeCategoryTotals sums every category across all days.
//
// Per-person prices (destinations, meals, transportation) are multiplied by
// the itinerary's people count. Hotel nights are charged once per day
// regardless of the people count. Each guide is charged for the full trip
// length, not for the days they are actually present; per-day guide
// assignment does not exist in this model.
func ComputeCategoryTotals(it *entity.Itinerary) CategoryTotals {
	var totals CategoryTotals
	people := float64(it.NumberOfPeople)

	for _, day := range it.Days {
		for _, dest := range day.Destinations {
			totals.Destinations.Total += dest.PricePerPerson * people
			totals.Destinations.Count++
		}

		if day.Hotel != nil {
			totals.Accommodation.Total += day.Hotel.PricePerNight
			totals.Accommodation.Count++
		}

		for _, meal := range day.Meals {
			totals.Meals.Total += meal.PricePerPerson * people
			totals.Meals.Count++
		}

		if day.Transportation != nil {
			totals.Transportation.Total += day.Transportation.PricePerPerson * people
			totals.Transportation.Count++
		}
	}

	tripDays := float64(len(it.Days))
	for _, guide := range it.TourGuides {
		totals.Guides.Total += guide.PricePerDay * tripDays
		totals.Guides.Count++
	}

	return totals
}

// ComputeInvoiceTotals rolls the category totals up into invoice figures.
// Service fee and tax are both computed off the pre-fee subtotal; tax is
// never compounded on top of the fee. No intermediate rounding happens here;
// display formatting is the presentation layer's concern.
func ComputeInvoiceTotals(ct CategoryTotals, serviceFeeRate, taxRate float64, numberOfPeople int) (InvoiceTotals, error) {
	if numberOfPeople < 1 {
		return InvoiceTotals{}, ErrInvalidPeopleCount
	}

	subtotal := ct.Subtotal()
	serviceFee := subtotal * serviceFeeRate
	tax := subtotal * taxRate
	total := subtotal + serviceFee + tax

	return InvoiceTotals{
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Tax:        tax,
		Total:      total,
		PerPerson:  total / float64(numberOfPeople),
	}, nil
}

// GrandTotal is the invoice total without the per-person figure, usable even
// when the people count is unknown or zero.
func GrandTotal(ct CategoryTotals, serviceFeeRate, taxRate float64) float64 {
	subtotal := ct.Subtotal()

	return subtotal + subtotal*serviceFeeRate + subtotal*taxRate
}
