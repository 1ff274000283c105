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

	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/order/domain"
	"github.com/tair/shop-backoffice/internal/order/usecase/command"
	"github.com/tair/shop-backoffice/internal/order/usecase/query"
	"github.com/tair/shop-backoffice/pkg/apperrors"
	"github.com/tair/shop-backoffice/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_api_requests_total",
			Help: "Total number of requests to the order API",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_api_request_duration_seconds",
			Help:    "Duration of order API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_api_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	createHandler *command.CreateOrderHandler
	statusHandler *command.UpdateStatusHandler
	deleteHandler *command.DeleteOrderHandler

	// Query handlers
	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler
}

// NewOrderHandler creates a new order handler. publisher may be nil when
// eventing is disabled.
func NewOrderHandler(repo domain.OrderRepository, publisher command.EventPublisher) *OrderHandler {
	return &OrderHandler{
		createHandler: command.NewCreateOrderHandler(repo, publisher),
		statusHandler: command.NewUpdateStatusHandler(repo),
		deleteHandler: command.NewDeleteOrderHandler(repo),
		getHandler:    query.NewGetOrderHandler(repo),
		listHandler:   query.NewListOrdersHandler(repo),
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

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", metricsMiddleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", metricsMiddleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders", metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", metricsMiddleware("/api/orders/{id}", h.UpdateOrder)).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", metricsMiddleware("/api/orders/{id}", h.DeleteOrder)).Methods("DELETE")
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Order not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Failed to get order")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to get order"})
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName  string  `json:"customer_name"`
		CustomerEmail string  `json:"customer_email"`
		ProductID     uint    `json:"product_id"`
		Quantity      int     `json:"quantity"`
		TotalAmount   float64 `json:"total_amount"`
		Status        string  `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		TotalAmount:   req.TotalAmount,
		Status:        req.Status,
	})
	if errors.Is(err, inventorydomain.ErrNotFound) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Product has no inventory record"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", req.ProductID).Msg("Failed to create order")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to create order"})
		return
	}

	ordersPlaced.Inc()
	respondJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	order, err := h.statusHandler.Handle(r.Context(), command.UpdateStatusCommand{ID: id, Status: req.Status})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Order not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Failed to update order")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to update order"})
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Order not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Failed to delete order")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to delete order"})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid order ID"})
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
