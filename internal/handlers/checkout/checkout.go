package checkout

import (
	"net/http"

	"sifted_back_end/internal/cart"
	"sifted_back_end/internal/checkout"
	"sifted_back_end/internal/middleware"
	"sifted_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *cart.Store
}

func NewHandler(store *cart.Store) *Handler {
	return &Handler{store: store}
}

// Summary serves the checkout page data: cart lines plus the tax-inclusive
// totals. An empty cart is a normal response ("Keranjangmu masih kosong"),
// not an error.
//
// GET /api/checkout
func (h *Handler) Summary(c *gin.Context) {
	items := h.store.Items(c.Request.Context(), middleware.CartID(c))
	if items == nil {
		items = []models.CartItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"summary": checkout.Summarize(items),
		"empty":   len(items) == 0,
	})
}
