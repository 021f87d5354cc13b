package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cartstore "sifted_back_end/internal/cart"
	"sifted_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type memStorage struct {
	carts map[string][]models.CartItem
}

func newMemStorage() *memStorage {
	return &memStorage{carts: map[string][]models.CartItem{}}
}

func (s *memStorage) Load(_ context.Context, cartID string) ([]models.CartItem, error) {
	return s.carts[cartID], nil
}

func (s *memStorage) Save(_ context.Context, cartID string, items []models.CartItem) error {
	s.carts[cartID] = items
	return nil
}

func (s *memStorage) Clear(_ context.Context, cartID string) error {
	delete(s.carts, cartID)
	return nil
}

type fakeOrders struct {
	inserted  []models.Order
	insertErr error
}

func (f *fakeOrders) Insert(_ context.Context, order models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, order)
	return nil
}

func (f *fakeOrders) MarkPaid(context.Context, string) (models.Order, bool, error) {
	return models.Order{}, false, nil
}

func (f *fakeOrders) List(context.Context) ([]models.Order, error) {
	return f.inserted, nil
}

type fakeGateway struct {
	calls int
	err   error
}

func (f *fakeGateway) CreateInvoice(_ context.Context, order models.Order) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return "https://pay.example.com/invoice/abc", "cs_test_abc", nil
}

type fakeDrafts struct {
	drafts  map[string]models.CustomerInfo
	cleared []string
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{drafts: map[string]models.CustomerInfo{}}
}

func (f *fakeDrafts) Load(_ context.Context, cartID string) (models.CustomerInfo, bool, error) {
	c, ok := f.drafts[cartID]
	return c, ok, nil
}

func (f *fakeDrafts) Save(_ context.Context, cartID string, c models.CustomerInfo) error {
	f.drafts[cartID] = c
	return nil
}

func (f *fakeDrafts) Clear(_ context.Context, cartID string) error {
	delete(f.drafts, cartID)
	f.cleared = append(f.cleared, cartID)
	return nil
}

type fakeLocker struct {
	denied bool
}

func (f *fakeLocker) Acquire(context.Context, string, time.Duration) bool { return !f.denied }
func (f *fakeLocker) Release(context.Context, string)                    {}

// --- helpers ---

type fixture struct {
	handler *Handler
	storage *memStorage
	orders  *fakeOrders
	gateway *fakeGateway
	drafts  *fakeDrafts
	locker  *fakeLocker
	router  *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	f := &fixture{
		storage: newMemStorage(),
		orders:  &fakeOrders{},
		gateway: &fakeGateway{},
		drafts:  newFakeDrafts(),
		locker:  &fakeLocker{},
	}
	store := cartstore.NewStore(f.storage)
	f.handler = NewHandler(store, f.orders, f.gateway, f.drafts, f.locker)

	f.router = gin.New()
	f.router.Use(func(c *gin.Context) {
		c.Set("cart_id", "test-cart")
	})
	f.router.POST("/api/payments", f.handler.Create)
	f.router.GET("/api/customer-draft", f.handler.GetDraft)
	f.router.PUT("/api/customer-draft", f.handler.SaveDraft)
	return f
}

func (f *fixture) post(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func validRequest() createRequest {
	return createRequest{
		Cart: []models.CartItem{
			{ProductID: "p1", Name: "sifted aren creamy latte", Price: 29000, Quantity: 2},
		},
		Total: 58000,
		Customer: models.CustomerInfo{
			Name:    "Budi Santoso",
			Email:   "budi@example.com",
			Address: "Jl. Kemang Raya No. 12",
			Phone:   "081234567890",
		},
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

// --- tests ---

func TestCreateReturnsInvoiceURLAndClearsState(t *testing.T) {
	f := newFixture()
	f.storage.carts["test-cart"] = validRequest().Cart
	f.drafts.drafts["test-cart"] = validRequest().Customer

	w := f.post(t, validRequest())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://pay.example.com/invoice/abc", body["invoiceUrl"])

	require.Len(t, f.orders.inserted, 1)
	order := f.orders.inserted[0]
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 58000, order.Total, 0.001, "submitted total must omit tax")
	assert.Equal(t, "6281234567890", order.Customer.Phone, "phone must be normalized before submission")
	assert.Equal(t, "cs_test_abc", order.ExternalID)

	assert.Empty(t, f.storage.carts["test-cart"], "cart must be cleared after a successful submission")
	assert.Contains(t, f.drafts.cleared, "test-cart", "customer draft must be cleared")
}

func TestCreateValidationFailureSkipsGateway(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*createRequest)
	}{
		{"empty name", func(r *createRequest) { r.Customer.Name = "  " }},
		{"bad email", func(r *createRequest) { r.Customer.Email = "not-an-email" }},
		{"empty address", func(r *createRequest) { r.Customer.Address = "" }},
		{"short phone", func(r *createRequest) { r.Customer.Phone = "0812" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tc.mutate(&req)

			w := f.post(t, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, errorMessage(t, w))
			assert.Zero(t, f.gateway.calls, "validation failures must not reach the gateway")
			assert.Empty(t, f.orders.inserted)
		})
	}
}

func TestCreateEmptyCartRejected(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Cart = nil

	w := f.post(t, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, f.gateway.calls)
}

func TestCreateGatewayFailureReturnsToEditableState(t *testing.T) {
	f := newFixture()
	f.gateway.err = errors.New("gateway timeout")
	f.storage.carts["test-cart"] = validRequest().Cart

	w := f.post(t, validRequest())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotEmpty(t, errorMessage(t, w))
	assert.Empty(t, f.orders.inserted)
	assert.NotEmpty(t, f.storage.carts["test-cart"], "cart must survive a failed submission")
}

func TestCreateDuplicateSubmissionBlocked(t *testing.T) {
	f := newFixture()
	f.locker.denied = true

	w := f.post(t, validRequest())

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Zero(t, f.gateway.calls)
}

func TestDraftRoundTrip(t *testing.T) {
	f := newFixture()

	payload, _ := json.Marshal(gin.H{"customer": validRequest().Customer})
	req := httptest.NewRequest(http.MethodPut, "/api/customer-draft", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/customer-draft", nil)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Customer models.CustomerInfo `json:"customer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Budi Santoso", body.Customer.Name)
	assert.Equal(t, "081234567890", body.Customer.Phone, "drafts keep the raw phone")
}
