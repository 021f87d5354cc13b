package payment

import (
	"context"
	"encoding/json"
	"log"

	"sifted_back_end/internal/models"
	"sifted_back_end/internal/utils"

	"github.com/redis/go-redis/v9"
)

// OrdersFeedChannel is the Redis pub/sub channel the admin dashboard's
// websocket listens on.
const OrdersFeedChannel = "orders:feed"

// ConfirmationNotifier emails the customer their invoice and publishes the
// paid order to the live dashboard feed. Runs off the webhook goroutine, so
// every failure is logged and dropped.
type ConfirmationNotifier struct {
	redis *redis.Client
}

func NewConfirmationNotifier(redisClient *redis.Client) *ConfirmationNotifier {
	return &ConfirmationNotifier{redis: redisClient}
}

func (n *ConfirmationNotifier) OrderPaid(order models.Order) {
	n.broadcast(order)
	n.email(order)
}

func (n *ConfirmationNotifier) broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	if err := n.redis.Publish(context.Background(), OrdersFeedChannel, data).Err(); err != nil {
		log.Printf("⚠️ Dashboard feed publish failed: %v", err)
	}
}

func (n *ConfirmationNotifier) email(order models.Order) {
	html := utils.GenerateOrderConfirmationHTML(order)

	pdf, err := utils.GenerateInvoicePDF(order)
	if err != nil {
		log.Printf("⚠️ Invoice PDF generation failed, sending without attachment: %v", err)
		pdf = nil
	}

	if err := utils.SendConfirmationEmail(order.Customer.Email, "Konfirmasi Pesanan Sifted House", html, pdf); err != nil {
		log.Printf("❌ Confirmation email failed for %s: %v", order.Customer.Email, err)
	} else {
		log.Println("📧 Confirmation email sent to", order.Customer.Email)
	}
}
