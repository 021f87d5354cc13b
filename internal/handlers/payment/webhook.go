package payment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"sifted_back_end/internal/models"
	"sifted_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
)

// Notifier is told about settled payments. The production notifier emails the
// customer and feeds the live dashboard.
type Notifier interface {
	OrderPaid(order models.Order)
}

type WebhookHandler struct {
	orders   repository.OrderRepository
	notifier Notifier
}

func NewWebhookHandler(orders repository.OrderRepository, notifier Notifier) *WebhookHandler {
	return &WebhookHandler{orders: orders, notifier: notifier}
}

// Handle is the gateway callback. Marking an order paid is idempotent, so a
// replayed event is acknowledged without side effects.
//
// POST /api/payments/webhook
func (h *WebhookHandler) Handle(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal membaca body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	var event stripe.Event

	if secret == "" {
		log.Println("⚠️ STRIPE_WEBHOOK_SECRET not set, accepting unsigned events (test mode)")
		if err := json.Unmarshal(payload, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON tidak valid"})
			return
		}
	} else {
		event, err = webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), secret)
		if err != nil {
			log.Println("❌ Invalid webhook signature:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Signature tidak valid"})
			return
		}
	}

	if event.Type != "checkout.session.completed" {
		log.Printf("ℹ️ Ignoring event: %s", event.Type)
		c.Status(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Println("❌ Failed to decode checkout session:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event tidak valid"})
		return
	}

	order, transitioned, err := h.orders.MarkPaid(c.Request.Context(), session.ID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		log.Printf("⚠️ Webhook for unknown session %s", session.ID)
		c.Status(http.StatusOK)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to mark order paid: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui pesanan"})
		return
	}

	if !transitioned {
		log.Printf("🔁 Order %s already paid, ignoring replay", order.ID)
		c.Status(http.StatusOK)
		return
	}

	log.Printf("✅ Order %s paid (Rp %.0f)", order.ID, order.Total)
	go h.notifier.OrderPaid(order)

	c.Status(http.StatusOK)
}
