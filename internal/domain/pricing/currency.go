package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// rupiahPrinter renders amounts with Indonesian digit grouping (dots).
var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount as zero-decimal Indonesian Rupiah, e.g.
// "Rp1.400.000". Rounding to whole rupiah happens only here, at display time.
func FormatRupiah(amount float64) string {
	return rupiahPrinter.Sprintf("Rp%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
