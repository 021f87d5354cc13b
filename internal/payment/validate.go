package payment

import (
	"regexp"
	"strings"

	"sifted_back_end/internal/models"
)

var (
	// Same deliberately loose check the storefront always used: text@text.text.
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^62\d{7,15}$`)
)

// ValidateOrder checks the customer contact block before anything is sent to
// the payment gateway. It returns a user-facing message, empty when valid.
// Validation failures are answers, not errors.
func ValidateOrder(customer models.CustomerInfo) string {
	if strings.TrimSpace(customer.Name) == "" {
		return "Nama wajib diisi."
	}
	if !emailPattern.MatchString(customer.Email) {
		return "Format email tidak valid."
	}
	if strings.TrimSpace(customer.Address) == "" {
		return "Alamat wajib diisi."
	}
	normalized := NormalizePhone(customer.Phone)
	if !phonePattern.MatchString(normalized) {
		return "Nomor WhatsApp tidak valid. Gunakan format Indonesia, contoh 0812… (akan diubah ke 62…)."
	}
	return ""
}

// CalcTotal sums the cart lines without tax. The checkout page shows a
// tax-inclusive total; the submitted payment amount does not include it.
func CalcTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
