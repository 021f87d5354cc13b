package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"sifted_back_end/internal/middleware"
	"sifted_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// DraftStore keeps the half-filled contact form between visits, the server
// version of the old "payment_customer" local-storage key. Drafts are cleared
// after a successful payment submission.
type DraftStore interface {
	Load(ctx context.Context, cartID string) (models.CustomerInfo, bool, error)
	Save(ctx context.Context, cartID string, customer models.CustomerInfo) error
	Clear(ctx context.Context, cartID string) error
}

const draftTTL = 7 * 24 * time.Hour

type RedisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func draftKey(cartID string) string {
	return "payment_customer:" + cartID
}

func (s *RedisDraftStore) Load(ctx context.Context, cartID string) (models.CustomerInfo, bool, error) {
	data, err := s.client.Get(ctx, draftKey(cartID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.CustomerInfo{}, false, nil
	}
	if err != nil {
		return models.CustomerInfo{}, false, err
	}

	var customer models.CustomerInfo
	if err := json.Unmarshal([]byte(data), &customer); err != nil {
		// Same fail-open rule as the cart: a corrupt draft is a blank form.
		return models.CustomerInfo{}, false, nil
	}
	return customer, true, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, cartID string, customer models.CustomerInfo) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(cartID), data, draftTTL).Err()
}

func (s *RedisDraftStore) Clear(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, draftKey(cartID)).Err()
}

// GetDraft restores the saved contact form on mount.
//
// GET /api/customer-draft
func (h *Handler) GetDraft(c *gin.Context) {
	customer, found, err := h.drafts.Load(c.Request.Context(), middleware.CartID(c))
	if err != nil || !found {
		// Fail open to an empty form.
		c.JSON(http.StatusOK, gin.H{"customer": models.CustomerInfo{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// SaveDraft persists the contact form on every field change. No validation:
// drafts are allowed to be incomplete.
//
// PUT /api/customer-draft {customer}
func (h *Handler) SaveDraft(c *gin.Context) {
	var input struct {
		Customer models.CustomerInfo `json:"customer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	// Persistence failures are deliberately invisible to the customer.
	_ = h.drafts.Save(c.Request.Context(), middleware.CartID(c), input.Customer)
	c.JSON(http.StatusOK, gin.H{"customer": input.Customer})
}
