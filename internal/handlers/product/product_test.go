package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sifted_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products []models.Product
	err      error
}

func (f *fakeRepo) List(context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) ListByCategory(_ context.Context, category string) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id gocql.UUID) (models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errors.New("not found")
}

func (f *fakeRepo) Search(_ context.Context, query string) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) Create(_ context.Context, p *models.Product) error { return f.err }
func (f *fakeRepo) Update(context.Context, models.Product) error      { return nil }
func (f *fakeRepo) Delete(context.Context, gocql.UUID) error          { return nil }

type catalogResponse struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
}

func newCatalogRouter(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(repo)
	router := gin.New()
	router.GET("/api/products", h.List)
	router.GET("/api/products/category/:category", h.ListByCategory)
	router.GET("/api/products/search", h.Search)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCatalog(t *testing.T, w *httptest.ResponseRecorder) catalogResponse {
	t.Helper()
	var resp catalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: gocql.TimeUUID(), Name: "Aren Creamy Latte", Price: 29000, Category: models.CategoryDrinks},
		{ID: gocql.TimeUUID(), Name: "Extra Shot", Price: 8000, Category: models.CategoryAdditional},
	}
}

func TestListReturnsCatalog(t *testing.T) {
	router := newCatalogRouter(&fakeRepo{products: sampleProducts()})

	w := get(router, "/api/products")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCatalog(t, w)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Aren Creamy Latte", resp.Data[0].Name)
}

func TestListFailsOpenToEmptyCatalog(t *testing.T) {
	router := newCatalogRouter(&fakeRepo{err: errors.New("connection refused")})

	w := get(router, "/api/products")

	require.Equal(t, http.StatusOK, w.Code, "a broken catalog source must not break the page")
	resp := decodeCatalog(t, w)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestListEmptyStoreServesEmptySlice(t *testing.T) {
	router := newCatalogRouter(&fakeRepo{})

	w := get(router, "/api/products")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`, "an empty catalog is [] not null")
}

func TestListByCategoryFilters(t *testing.T) {
	router := newCatalogRouter(&fakeRepo{products: sampleProducts()})

	w := get(router, "/api/products/category/Drinks")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCatalog(t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, models.CategoryDrinks, resp.Data[0].Category)
}

func TestListByCategoryRejectsUnknown(t *testing.T) {
	router := newCatalogRouter(&fakeRepo{products: sampleProducts()})

	w := get(router, "/api/products/category/Snacks")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newCatalogRouter(&fakeRepo{products: sampleProducts()})

	w := get(router, "/api/products/search")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchFallsBackToRepository(t *testing.T) {
	// No Elasticsearch client in tests, so the handler must serve repository
	// results instead.
	router := newCatalogRouter(&fakeRepo{products: sampleProducts()[:1]})

	w := get(router, "/api/products/search?q=latte")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCatalog(t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Aren Creamy Latte", resp.Data[0].Name)
}
