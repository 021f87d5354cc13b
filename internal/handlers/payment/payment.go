package payment

import (
	"log"
	"net/http"
	"time"

	"sifted_back_end/internal/cart"
	"sifted_back_end/internal/middleware"
	"sifted_back_end/internal/models"
	"sifted_back_end/internal/payment"
	"sifted_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type Handler struct {
	carts   *cart.Store
	orders  repository.OrderRepository
	gateway payment.InvoiceGateway
	drafts  DraftStore
	locks   Locker
}

func NewHandler(carts *cart.Store, orders repository.OrderRepository, gateway payment.InvoiceGateway, drafts DraftStore, locks Locker) *Handler {
	return &Handler{carts: carts, orders: orders, gateway: gateway, drafts: drafts, locks: locks}
}

type createRequest struct {
	Cart     []models.CartItem   `json:"cart"`
	Total    float64             `json:"total"`
	Customer models.CustomerInfo `json:"customer"`
}

// How long a submission may hold the in-flight lock before a retry is allowed.
const inflightTTL = 30 * time.Second

// Create is the order submission endpoint. Validation failures come back as
// messages without touching the gateway; once the hosted invoice exists the
// customer draft and the cart are cleared and the browser is redirected to
// the returned URL.
//
// POST /api/payments {cart, total, customer} → {invoiceUrl}
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	if len(req.Cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keranjang kosong. Belanja dulu ya."})
		return
	}

	if msg := payment.ValidateOrder(req.Customer); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	customer := req.Customer
	customer.Phone = payment.NormalizePhone(customer.Phone)

	// The submitted amount is recomputed server-side; the client's number is
	// advisory only.
	total := payment.CalcTotal(req.Cart)
	if req.Total != total {
		log.Printf("⚠️ Client total %.0f differs from computed %.0f, using computed", req.Total, total)
	}

	ctx := c.Request.Context()
	cartID := middleware.CartID(c)

	// One submission at a time per session, the server-side twin of the
	// disabled submit button.
	lockKey := "payment_inflight:" + cartID
	if !h.locks.Acquire(ctx, lockKey, inflightTTL) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Pembayaran sedang diproses. Tunggu sebentar ya."})
		return
	}
	defer h.locks.Release(ctx, lockKey)

	order := models.Order{
		ID:        gocql.TimeUUID(),
		Items:     req.Cart,
		Total:     total,
		Customer:  customer,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	invoiceURL, externalID, err := h.gateway.CreateInvoice(ctx, order)
	if err != nil {
		log.Printf("❌ Invoice creation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gagal membuat link pembayaran"})
		return
	}

	order.InvoiceURL = invoiceURL
	order.ExternalID = externalID

	if err := h.orders.Insert(ctx, order); err != nil {
		log.Printf("❌ Order insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan pesanan"})
		return
	}

	// Success path: forget the draft and the cart, then hand the browser to
	// the hosted invoice page.
	if err := h.drafts.Clear(ctx, cartID); err != nil {
		log.Printf("⚠️ Customer draft not cleared: %v", err)
	}
	h.carts.Clear(ctx, cartID)

	log.Printf("✅ Order %s submitted (Rp %.0f) for %s", order.ID, order.Total, customer.Email)
	c.JSON(http.StatusOK, gin.H{"invoiceUrl": invoiceURL})
}
