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

	"github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/internal/product/usecase/command"
	"github.com/tair/shop-backoffice/internal/product/usecase/query"
	"github.com/tair/shop-backoffice/pkg/apperrors"
	"github.com/tair/shop-backoffice/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_api_requests_total",
			Help: "Total number of requests to the product API",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "product_api_request_duration_seconds",
			Help:    "Duration of product API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "product_api_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_api_total_products",
			Help: "Total number of products in the catalog",
		},
	)
)

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	getHandler   *query.GetProductHandler
	listHandler  *query.ListProductsHandler
	statsHandler *query.GetStatsHandler
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	return &ProductHandler{
		createHandler: command.NewCreateProductHandler(repo),
		updateHandler: command.NewUpdateProductHandler(repo),
		deleteHandler: command.NewDeleteProductHandler(repo),
		getHandler:    query.NewGetProductHandler(repo),
		listHandler:   query.NewListProductsHandler(repo),
		statsHandler:  query.NewGetStatsHandler(repo),
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
		requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products", metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to list products"})
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Product not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to get product")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to get product"})
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get product stats")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to get product stats"})
		return
	}

	totalProducts.Set(float64(stats.TotalProducts))
	respondJSON(w, http.StatusOK, stats)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		Category      string  `json:"category"`
		Price         float64 `json:"price"`
		Image         string  `json:"image"`
		StockQuantity int     `json:"stock_quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
	})
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to create product"})
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Category      *string  `json:"category"`
		Price         *float64 `json:"price"`
		Image         *string  `json:"image"`
		StockQuantity *int     `json:"stock_quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
	})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Product not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to update product")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to update product"})
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id})
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, messageResponse{Message: "Product not found"})
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to delete product")
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to delete product"})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}

// pathID extracts the {id} path variable
func pathID(w http.ResponseWriter, r *http.Request, badIDMessage string) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: badIDMessage})
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
