package checkout

import "sifted_back_end/internal/models"

// TaxRate is the Indonesian PPN applied on the checkout page.
const TaxRate = 0.11

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Subtotal sums price × quantity over all cart lines.
func Subtotal(items []models.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// Summarize computes the tax-inclusive totals shown on the checkout page.
// Note: the payment submission total deliberately does NOT include tax, see
// payment.CalcTotal.
func Summarize(items []models.CartItem) Summary {
	subtotal := Subtotal(items)
	tax := subtotal * TaxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
