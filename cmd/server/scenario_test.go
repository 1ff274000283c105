package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shop-backoffice/internal/httpmiddleware"
	inventoryhttp "github.com/tair/shop-backoffice/internal/inventory/delivery/http"
	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	orderhttp "github.com/tair/shop-backoffice/internal/order/delivery/http"
	orderdomain "github.com/tair/shop-backoffice/internal/order/domain"
	producthttp "github.com/tair/shop-backoffice/internal/product/delivery/http"
	productdomain "github.com/tair/shop-backoffice/internal/product/domain"
)

// fakeStore is an in-memory stand-in for the PostgreSQL store. It applies the
// same multi-row semantics the real repositories implement in transactions:
// product creation provisions an inventory row, ledger writes refresh the
// product mirror, and fulfillment decrements the ledger.
type fakeStore struct {
	mu sync.Mutex

	products  map[uint]*productdomain.Product
	inventory map[uint]*inventorydomain.Inventory
	orders    map[uint]*orderdomain.Order

	nextProductID   uint
	nextInventoryID uint
	nextOrderID     uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[uint]*productdomain.Product),
		inventory: make(map[uint]*inventorydomain.Inventory),
		orders:    make(map[uint]*orderdomain.Order),
	}
}

func (s *fakeStore) inventoryByProduct(productID uint) *inventorydomain.Inventory {
	for _, inv := range s.inventory {
		if inv.ProductID == productID {
			return inv
		}
	}
	return nil
}

// --- ProductRepository ---

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, product *productdomain.Product, minStockLevel int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextProductID++
	product.ID = r.s.nextProductID
	stored := *product
	r.s.products[product.ID] = &stored

	r.s.nextInventoryID++
	r.s.inventory[r.s.nextInventoryID] = &inventorydomain.Inventory{
		ID:            r.s.nextInventoryID,
		ProductID:     product.ID,
		StockQuantity: product.StockQuantity,
		MinStockLevel: minStockLevel,
	}
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uint) (*productdomain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, productdomain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]productdomain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]productdomain.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *productdomain.Product, syncInventory bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; !ok {
		return productdomain.ErrNotFound
	}
	if syncInventory {
		if inv := r.s.inventoryByProduct(product.ID); inv != nil {
			inv.StockQuantity = product.StockQuantity
		}
	}
	stored := *product
	r.s.products[product.ID] = &stored
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return productdomain.ErrNotFound
	}
	delete(r.s.products, id)
	if inv := r.s.inventoryByProduct(id); inv != nil {
		delete(r.s.inventory, inv.ID)
	}
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

// --- InventoryRepository ---

type fakeInventoryRepo struct{ s *fakeStore }

func (r *fakeInventoryRepo) Upsert(_ context.Context, productID uint, stockQuantity int, minStockLevel *int) (*inventorydomain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv := r.s.inventoryByProduct(productID)
	if inv == nil {
		r.s.nextInventoryID++
		inv = &inventorydomain.Inventory{
			ID:            r.s.nextInventoryID,
			ProductID:     productID,
			MinStockLevel: inventorydomain.DefaultMinStockLevel,
		}
		r.s.inventory[inv.ID] = inv
	}
	inv.StockQuantity = stockQuantity
	if minStockLevel != nil {
		inv.MinStockLevel = *minStockLevel
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInventoryRepo) FindByID(_ context.Context, id uint) (*inventorydomain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv, ok := r.s.inventory[id]
	if !ok {
		return nil, inventorydomain.ErrNotFound
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInventoryRepo) FindByProductID(_ context.Context, productID uint) (*inventorydomain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv := r.s.inventoryByProduct(productID)
	if inv == nil {
		return nil, inventorydomain.ErrNotFound
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInventoryRepo) FindAll(_ context.Context) ([]inventorydomain.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]inventorydomain.InventoryItem, 0, len(r.s.inventory))
	for _, inv := range r.s.inventory {
		item := inventorydomain.InventoryItem{Inventory: *inv}
		if p, ok := r.s.products[inv.ProductID]; ok {
			item.ProductName = p.Name
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeInventoryRepo) UpdateAndSync(_ context.Context, id uint, stockQuantity, minStockLevel *int) (*inventorydomain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv, ok := r.s.inventory[id]
	if !ok {
		return nil, inventorydomain.ErrNotFound
	}
	if stockQuantity != nil {
		inv.StockQuantity = *stockQuantity
		if p, ok := r.s.products[inv.ProductID]; ok {
			p.StockQuantity = *stockQuantity
		}
	}
	if minStockLevel != nil {
		inv.MinStockLevel = *minStockLevel
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.inventory[id]; !ok {
		return inventorydomain.ErrNotFound
	}
	delete(r.s.inventory, id)
	return nil
}

// --- OrderRepository ---

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(_ context.Context, order *orderdomain.Order) (*inventorydomain.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv := r.s.inventoryByProduct(order.ProductID)
	if inv == nil {
		return nil, fmt.Errorf("product %d: %w", order.ProductID, inventorydomain.ErrNotFound)
	}

	r.s.nextOrderID++
	order.ID = r.s.nextOrderID
	stored := *order
	r.s.orders[order.ID] = &stored

	inv.StockQuantity -= order.Quantity
	if p, ok := r.s.products[order.ProductID]; ok {
		p.StockQuantity = inv.StockQuantity
	}

	copied := *inv
	return &copied, nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*orderdomain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, orderdomain.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]orderdomain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]orderdomain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, status string) (*orderdomain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, orderdomain.ErrNotFound
	}
	o.Status = status
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[id]; !ok {
		return orderdomain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

func (r *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.orders)), nil
}

// --- Scenario ---

func newScenarioRouter(store *fakeStore) *mux.Router {
	router := mux.NewRouter()
	producthttp.NewProductHandler(&fakeProductRepo{store}).RegisterRoutes(router)
	inventoryhttp.NewInventoryHandler(&fakeInventoryRepo{store}).RegisterRoutes(router)
	orderhttp.NewOrderHandler(&fakeOrderRepo{store}, nil).RegisterRoutes(router)
	router.NotFoundHandler = httpmiddleware.NotFoundHandler()
	return router
}

func do(t *testing.T, router *mux.Router, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
	}
	return rec
}

func TestStockStaysSynchronizedAcrossResources(t *testing.T) {
	router := newScenarioRouter(newFakeStore())

	// Create a product with 100 in stock.
	var product productdomain.Product
	rec := do(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name":           "Laptop",
		"price":          999.99,
		"stock_quantity": 100,
	}, &product)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotZero(t, product.ID)

	// The inventory record was provisioned with the same quantity and the
	// default threshold.
	var items []inventorydomain.InventoryItem
	rec = do(t, router, http.MethodGet, "/api/inventory", nil, &items)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, 100, items[0].StockQuantity)
	assert.Equal(t, inventorydomain.DefaultMinStockLevel, items[0].MinStockLevel)
	assert.Equal(t, "Laptop", items[0].ProductName)

	inventoryID := items[0].ID

	// An operator correction through the inventory resource flows back to
	// the product mirror.
	var inv inventorydomain.Inventory
	rec = do(t, router, http.MethodPut, fmt.Sprintf("/api/inventory/%d", inventoryID), map[string]interface{}{
		"stock_quantity": 50,
	}, &inv)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, inv.StockQuantity)

	var refreshed productdomain.Product
	rec = do(t, router, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, &refreshed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, refreshed.StockQuantity)

	// Placing an order decrements both views.
	var order orderdomain.Order
	rec = do(t, router, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"product_id":     product.ID,
		"quantity":       10,
		"total_amount":   9999.90,
	}, &order)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, orderdomain.StatusPending, order.Status)

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/api/inventory/%d", inventoryID), nil, &inv)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 40, inv.StockQuantity)

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, &refreshed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 40, refreshed.StockQuantity)

	// A product-side stock edit overwrites the ledger.
	rec = do(t, router, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID), map[string]interface{}{
		"stock_quantity": 60,
	}, &refreshed)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/api/inventory/%d", inventoryID), nil, &inv)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60, inv.StockQuantity)
}

func TestOrderAgainstUnknownProductReturns400(t *testing.T) {
	router := newScenarioRouter(newFakeStore())

	var got map[string]string
	rec := do(t, router, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"product_id":     42,
		"quantity":       1,
		"total_amount":   10,
	}, &got)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product has no inventory record", got["message"])
}

func TestOrderDeletionDoesNotRestock(t *testing.T) {
	store := newFakeStore()
	router := newScenarioRouter(store)

	var product productdomain.Product
	do(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name":           "Laptop",
		"price":          999.99,
		"stock_quantity": 100,
	}, &product)

	var order orderdomain.Order
	do(t, router, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"product_id":     product.ID,
		"quantity":       30,
		"total_amount":   100,
	}, &order)

	rec := do(t, router, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var refreshed productdomain.Product
	do(t, router, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, &refreshed)
	assert.Equal(t, 70, refreshed.StockQuantity)
}

func TestBackorderDrivesLedgerNegative(t *testing.T) {
	router := newScenarioRouter(newFakeStore())

	var product productdomain.Product
	do(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name":           "Laptop",
		"price":          999.99,
		"stock_quantity": 5,
	}, &product)

	var order orderdomain.Order
	rec := do(t, router, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"product_id":     product.ID,
		"quantity":       8,
		"total_amount":   100,
	}, &order)
	require.Equal(t, http.StatusCreated, rec.Code)

	var refreshed productdomain.Product
	do(t, router, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, &refreshed)
	assert.Equal(t, -3, refreshed.StockQuantity)
}

func TestUnmatchedRouteReturnsCatchAllBody(t *testing.T) {
	router := newScenarioRouter(newFakeStore())

	var got map[string]string
	rec := do(t, router, http.MethodGet, "/api/nope", nil, &got)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not Found", got["message"])
}
