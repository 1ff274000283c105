package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/inventory/usecase/command"
	"github.com/tair/shop-backoffice/internal/inventory/usecase/query"
	"github.com/tair/shop-backoffice/pkg/apperrors"
	"github.com/tair/shop-backoffice/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_api_requests_total",
			Help: "Total number of requests to the inventory API",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_api_request_duration_seconds",
			Help:    "Duration of inventory API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// InventoryHandler handles HTTP requests for inventory using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	upsertHandler *command.UpsertInventoryHandler
	updateHandler *command.UpdateInventoryHandler
	deleteHandler *command.DeleteInventoryHandler

	// Query handlers
	getHandler  *query.GetInventoryHandler
	listHandler *query.ListInventoryHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(repo domain.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{
		upsertHandler: command.NewUpsertInventoryHandler(repo),
		updateHandler: command.NewUpdateInventoryHandler(repo),
		deleteHandler: command.NewDeleteInventoryHandler(repo),
		getHandler:    query.NewGetInventoryHandler(repo),
		listHandler:   query.NewListInventoryHandler(repo),
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", metricsMiddleware("/api/inventory", h.ListInventory)).Methods("GET")
	router.HandleFunc("/api/inventory/{id}", metricsMiddleware("/api/inventory/{id}", h.GetInventory)).Methods("GET")
	router.HandleFunc("/api/inventory", metricsMiddleware("/api/inventory", h.UpsertInventory)).Methods("POST")
	router.HandleFunc("/api/inventory/{id}", metricsMiddleware("/api/inventory/{id}", h.UpdateInventory)).Methods("PUT")
	router.HandleFunc("/api/inventory/{id}", metricsMiddleware("/api/inventory/{id}", h.DeleteInventory)).Methods("DELETE")
}

// ListInventory handles GET /api/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.listHandler.Handle(r.Context(), query.ListInventoryQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to list inventory"})
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// GetInventory handles GET /api/inventory/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	inv, err := h.getHandler.Handle(r.Context(), query.GetInventoryQuery{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Inventory item not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("inventory_id", id).Msg("Failed to get inventory item")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to get inventory item"})
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

// UpsertInventory handles POST /api/inventory
func (h *InventoryHandler) UpsertInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID     uint `json:"product_id"`
		StockQuantity int  `json:"stock_quantity"`
		MinStockLevel *int `json:"min_stock_level"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	inv, err := h.upsertHandler.Handle(r.Context(), command.UpsertInventoryCommand{
		ProductID:     req.ProductID,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
	})
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", req.ProductID).Msg("Failed to upsert inventory")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to upsert inventory"})
		return
	}

	respondJSON(w, http.StatusCreated, inv)
}

// UpdateInventory handles PUT /api/inventory/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		StockQuantity *int `json:"stock_quantity"`
		MinStockLevel *int `json:"min_stock_level"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	inv, err := h.updateHandler.Handle(r.Context(), command.UpdateInventoryCommand{
		ID:            id,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
	})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Inventory item not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("inventory_id", id).Msg("Failed to update inventory")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to update inventory"})
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

// DeleteInventory handles DELETE /api/inventory/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.deleteHandler.Handle(r.Context(), command.DeleteInventoryCommand{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Inventory item not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("inventory_id", id).Msg("Failed to delete inventory item")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to delete inventory item"})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Inventory item deleted successfully"})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid inventory ID"})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
