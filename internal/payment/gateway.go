package payment

import (
	"context"
	"fmt"
	"log"
	"os"

	"sifted_back_end/internal/models"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// InvoiceGateway creates a hosted payment page for an order and returns its
// URL. The customer finishes payment there; we only hear back through the
// webhook.
type InvoiceGateway interface {
	CreateInvoice(ctx context.Context, order models.Order) (invoiceURL, externalID string, err error)
}

// StripeGateway builds a Stripe Checkout Session per order. The session URL
// is what the storefront redirects the browser to.
type StripeGateway struct {
	successURL string
	cancelURL  string
}

func NewStripeGateway() *StripeGateway {
	base := os.Getenv("STOREFRONT_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return &StripeGateway{
		successURL: base + "/payment/success",
		cancelURL:  base + "/payment",
	}
}

func (g *StripeGateway) CreateInvoice(ctx context.Context, order models.Order) (string, string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.Items))
	for _, item := range order.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("idr"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(item.Price * 100)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		CustomerEmail: stripe.String(order.Customer.Email),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
		Metadata: map[string]string{
			"order_id": order.ID.String(),
			"phone":    order.Customer.Phone,
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe checkout session: %w", err)
	}

	log.Printf("💳 Invoice created: %s (Rp %.0f) for %s", s.ID, order.Total, order.Customer.Email)
	return s.URL, s.ID, nil
}
