package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way the storefront does:
// 29000 → "Rp 29.000". Prices are whole rupiah, fractions are rounded.
func FormatRupiah(amount float64) string {
	return idPrinter.Sprintf("Rp %d", int64(math.Round(amount)))
}
