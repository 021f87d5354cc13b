package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sifted_back_end/internal/database"
	"sifted_back_end/internal/models"
	"sifted_back_end/internal/repository"
	"sifted_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	productsCacheKey = "products:all"
	productsCacheTTL = time.Hour
	signedURLExpiry  = 24 * time.Hour
)

type Handler struct {
	repo repository.ProductRepository
}

func NewHandler(repo repository.ProductRepository) *Handler {
	return &Handler{repo: repo}
}

// List serves the storefront catalog. The page must render even when the
// database is unreachable, so any storage failure resolves to an empty
// product list instead of an error response.
//
// GET /api/products → {success, data}
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if cached := readCache(ctx); cached != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	products, err := h.repo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Catalog fetch failed, serving empty list: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []models.Product{}})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	resolveImageURLs(ctx, products)
	writeCache(ctx, products)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// ListByCategory backs the category filter buttons (Drinks / Additional).
func (h *Handler) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Kategori tidak dikenal"})
		return
	}

	ctx := c.Request.Context()
	products, err := h.repo.ListByCategory(ctx, category)
	if err != nil {
		log.Printf("⚠️ Category fetch failed, serving empty list: %v", err)
		products = nil
	}
	if products == nil {
		products = []models.Product{}
	}

	resolveImageURLs(ctx, products)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// Search tries Elasticsearch first and falls back to a database scan when the
// index is empty or unreachable.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Parameter 'q' wajib diisi"})
		return
	}

	ctx := c.Request.Context()

	products, err := services.SearchProducts(ctx, query)
	if err != nil || len(products) == 0 {
		products, err = h.repo.Search(ctx, query)
		if err != nil {
			log.Printf("⚠️ Product search failed: %v", err)
			products = nil
		}
	}
	if products == nil {
		products = []models.Product{}
	}

	resolveImageURLs(ctx, products)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

func resolveImageURLs(ctx context.Context, products []models.Product) {
	for i := range products {
		resolved, err := services.ResolveImageURL(ctx, products[i].ImageURL, signedURLExpiry)
		if err == nil {
			products[i].ImageURL = resolved
		}
	}
}

func readCache(ctx context.Context) []models.Product {
	if database.Redis == nil {
		return nil
	}
	val, err := database.Redis.Get(ctx, productsCacheKey).Result()
	if err != nil || val == "" {
		return nil
	}
	var cached []models.Product
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil
	}
	return cached
}

func writeCache(ctx context.Context, products []models.Product) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productsCacheKey, data, productsCacheTTL)
	}
}

func invalidateCache(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, productsCacheKey)
}
