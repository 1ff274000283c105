package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/shop-backoffice/internal/product/domain"
)

var errStoreDown = errors.New("pq: connection refused at 10.0.0.5:5432")

// --- Mock Repository ---

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product, minStockLevel int) error {
	args := m.Called(ctx, product, minStockLevel)
	return args.Error(0)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product, syncInventory bool) error {
	args := m.Called(ctx, product, syncInventory)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestRouter(repo *mockProductRepository) *mux.Router {
	router := mux.NewRouter()
	NewProductHandler(repo).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestCreateProduct_Returns201WithEntity(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product"), 10).Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name":           "Laptop",
		"price":          999.99,
		"stock_quantity": 100,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 100, got.StockQuantity)

	repo.AssertExpectations(t)
}

func TestCreateProduct_ValidationFailureReturns400(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	rec := doRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"price": 999.99,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "product name is required", got["message"])
}

func TestCreateProduct_StoreFailureReturns500Generic(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product"), 10).Return(errStoreDown)

	rec := doRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name":           "Laptop",
		"price":          999.99,
		"stock_quantity": 100,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Failed to create product", got["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestUpdateProduct_StoreFailureReturns500Generic(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	stored := &domain.Product{ID: 1, Name: "Laptop", Price: 999.99, StockQuantity: 100}
	repo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product"), false).Return(errStoreDown)

	rec := doRequest(t, router, http.MethodPut, "/api/products/1", map[string]interface{}{
		"price": 899.99,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Failed to update product", got["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGetProduct_NotFoundReturns404(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, domain.ErrNotFound)

	rec := doRequest(t, router, http.MethodGet, "/api/products/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Product not found", got["message"])
}

func TestGetProduct_InvalidIDReturns400(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	rec := doRequest(t, router, http.MethodGet, "/api/products/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProducts_Returns200WithArray(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("FindAll", mock.Anything).Return([]domain.Product{
		{ID: 2, Name: "Mouse"},
		{ID: 1, Name: "Laptop"},
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Mouse", got[0].Name)
}

func TestListProducts_StoreFailureReturns500(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("FindAll", mock.Anything).Return(nil, assert.AnError)

	rec := doRequest(t, router, http.MethodGet, "/api/products", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateProduct_PartialUpdateReturns200(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	stored := &domain.Product{ID: 1, Name: "Laptop", Price: 999.99, StockQuantity: 100}
	repo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product"), false).Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/api/products/1", map[string]interface{}{
		"price": 899.99,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 899.99, got.Price)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 100, got.StockQuantity)
}

func TestUpdateProduct_StockChangeSyncsLedger(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	stored := &domain.Product{ID: 1, Name: "Laptop", Price: 999.99, StockQuantity: 100}
	repo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product"), true).Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/api/products/1", map[string]interface{}{
		"stock_quantity": 50,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestDeleteProduct_Returns200WithMessage(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("Delete", mock.Anything, uint(1)).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/products/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Product deleted successfully", got["message"])
}

func TestDeleteProduct_NotFoundReturns404(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("Delete", mock.Anything, uint(99)).Return(domain.ErrNotFound)

	rec := doRequest(t, router, http.MethodDelete, "/api/products/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStats_Returns200(t *testing.T) {
	repo := new(mockProductRepository)
	router := newTestRouter(repo)

	repo.On("Count", mock.Anything).Return(int64(42), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products/stats", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got["total_products"])
}
