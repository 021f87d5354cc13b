package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sifted_back_end/internal/models"
	"sifted_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaidOrders struct {
	paid      map[string]bool
	markCalls int
	missing   bool
}

func (f *fakePaidOrders) Insert(context.Context, models.Order) error { return nil }

func (f *fakePaidOrders) MarkPaid(_ context.Context, externalID string) (models.Order, bool, error) {
	f.markCalls++
	if f.missing {
		return models.Order{}, false, repository.ErrOrderNotFound
	}
	if f.paid[externalID] {
		return models.Order{ExternalID: externalID, Status: models.OrderStatusPaid}, false, nil
	}
	f.paid[externalID] = true
	return models.Order{ExternalID: externalID, Status: models.OrderStatusPaid, Total: 64380}, true, nil
}

func (f *fakePaidOrders) List(context.Context) ([]models.Order, error) { return nil, nil }

type chanNotifier struct {
	paid chan models.Order
}

func (n *chanNotifier) OrderPaid(order models.Order) {
	n.paid <- order
}

func webhookEvent(t *testing.T, eventType, sessionID string) []byte {
	t.Helper()
	session, err := json.Marshal(map[string]string{"id": sessionID})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": map[string]json.RawMessage{"object": session},
	})
	require.NoError(t, err)
	return payload
}

func postWebhook(router *gin.Engine, payload []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newWebhookFixture(t *testing.T) (*gin.Engine, *fakePaidOrders, *chanNotifier) {
	t.Helper()
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")
	gin.SetMode(gin.TestMode)

	orders := &fakePaidOrders{paid: map[string]bool{}}
	notifier := &chanNotifier{paid: make(chan models.Order, 1)}
	handler := NewWebhookHandler(orders, notifier)

	router := gin.New()
	router.POST("/api/payments/webhook", handler.Handle)
	return router, orders, notifier
}

func TestWebhookMarksOrderPaidAndNotifies(t *testing.T) {
	router, orders, notifier := newWebhookFixture(t)

	w := postWebhook(router, webhookEvent(t, "checkout.session.completed", "cs_test_abc"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, orders.paid["cs_test_abc"])

	select {
	case order := <-notifier.paid:
		assert.Equal(t, "cs_test_abc", order.ExternalID)
	case <-time.After(time.Second):
		t.Fatal("notifier was never told about the paid order")
	}
}

func TestWebhookReplayIsAcknowledgedWithoutNotifying(t *testing.T) {
	router, orders, notifier := newWebhookFixture(t)
	orders.paid["cs_test_abc"] = true

	w := postWebhook(router, webhookEvent(t, "checkout.session.completed", "cs_test_abc"))

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case <-notifier.paid:
		t.Fatal("a replayed event must not notify again")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	router, orders, _ := newWebhookFixture(t)

	w := postWebhook(router, webhookEvent(t, "invoice.created", "cs_test_abc"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, orders.markCalls)
}

func TestWebhookUnknownSessionIsAcknowledged(t *testing.T) {
	router, orders, _ := newWebhookFixture(t)
	orders.missing = true

	w := postWebhook(router, webhookEvent(t, "checkout.session.completed", "cs_missing"))

	assert.Equal(t, http.StatusOK, w.Code)
}
