package cart

import (
	"net/http"

	"sifted_back_end/internal/cart"
	"sifted_back_end/internal/middleware"
	"sifted_back_end/internal/models"
	"sifted_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type Handler struct {
	store *cart.Store
	repo  repository.ProductRepository
}

func NewHandler(store *cart.Store, repo repository.ProductRepository) *Handler {
	return &Handler{store: store, repo: repo}
}

func itemsOrEmpty(items []models.CartItem) []models.CartItem {
	if items == nil {
		return []models.CartItem{}
	}
	return items
}

// Get returns the cart for the current session.
//
// GET /api/cart
func (h *Handler) Get(c *gin.Context) {
	items := h.store.Items(c.Request.Context(), middleware.CartID(c))
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(items)})
}

// Add puts one more of a product into the cart (the ➕ button).
//
// POST /api/cart/add {productId}
func (h *Handler) Add(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	id, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID product tidak valid"})
		return
	}

	ctx := c.Request.Context()
	product, err := h.repo.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product tidak ditemukan"})
		return
	}

	items := h.store.AddToCart(ctx, middleware.CartID(c), product)
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(items)})
}

// Remove takes one of a product out of the cart (the ➖ button). Removing a
// product that is not in the cart is a no-op, not an error.
//
// POST /api/cart/remove {productId}
func (h *Handler) Remove(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	items := h.store.RemoveFromCart(c.Request.Context(), middleware.CartID(c), input.ProductID)
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(items)})
}

// Clear empties the cart on explicit request.
//
// DELETE /api/cart
func (h *Handler) Clear(c *gin.Context) {
	h.store.Clear(c.Request.Context(), middleware.CartID(c))
	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
}
