package pricing

import (
	"fmt"
	"strings"

	"tourgenius/internal/domain/entity"
)

// BuildSummary renders a deterministic plain-text summary of the itinerary:
// header, then each day in chronological order with its items in the fixed
// field order destinations / hotel / meals / transportation, then the guide
// roster. The same text is embedded in the external calendar link, so the
// ordering is a regression-testable artifact. The total line reads the
// persisted TotalPrice, which the application recomputes with the configured
// fee and tax rates on every save.
func BuildSummary(it *entity.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tour: %s\n", it.Name)
	fmt.Fprintf(&b, "People: %d\n", it.NumberOfPeople)
	fmt.Fprintf(&b, "Total: %s\n", FormatRupiah(it.TotalPrice))

	for _, day := range it.Days {
		fmt.Fprintf(&b, "\nDay %d\n", day.Day)

		if len(day.Destinations) > 0 {
			b.WriteString("  Destinations:\n")
			for _, dest := range day.Destinations {
				fmt.Fprintf(&b, "    - %s (%s/person)\n", dest.Name, FormatRupiah(dest.PricePerPerson))
			}
		}

		if day.Hotel != nil {
			fmt.Fprintf(&b, "  Hotel: %s, %s (%s/night)\n", day.Hotel.Name, day.Hotel.Location, FormatRupiah(day.Hotel.PricePerNight))
		}

		if len(day.Meals) > 0 {
			b.WriteString("  Meals:\n")
			for _, meal := range day.Meals {
				fmt.Fprintf(&b, "    - %s: %s (%s/person)\n", meal.Type, meal.Description, FormatRupiah(meal.PricePerPerson))
			}
		}

		if day.Transportation != nil {
			fmt.Fprintf(&b, "  Transportation: %s (%s/person)\n", day.Transportation.Description, FormatRupiah(day.Transportation.PricePerPerson))
		}
	}

	if len(it.TourGuides) > 0 {
		b.WriteString("\nTour Guides:\n")
		for _, guide := range it.TourGuides {
			fmt.Fprintf(&b, "  - %s (%s/day)\n", guide.Name, FormatRupiah(guide.PricePerDay))
		}
	}

	return b.String()
}
