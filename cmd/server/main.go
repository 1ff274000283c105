package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/shop-backoffice/docs"
	"github.com/tair/shop-backoffice/internal/httpmiddleware"
	"github.com/tair/shop-backoffice/internal/inventory"
	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/order"
	orderdomain "github.com/tair/shop-backoffice/internal/order/domain"
	ordercommand "github.com/tair/shop-backoffice/internal/order/usecase/command"
	"github.com/tair/shop-backoffice/internal/product"
	productdomain "github.com/tair/shop-backoffice/internal/product/domain"
	producthttp "github.com/tair/shop-backoffice/internal/product/delivery/http"
	"github.com/tair/shop-backoffice/kafka"
	"github.com/tair/shop-backoffice/pkg/database"
	"github.com/tair/shop-backoffice/pkg/logger"
	"github.com/tair/shop-backoffice/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "shop-backoffice")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting shop backoffice")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "backofficedb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Dedicated connection for health checks
	healthDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer healthDB.Close()

	// Run migrations. Products first, inventory and orders reference them.
	if err := db.AutoMigrate(
		&productdomain.Product{},
		&inventorydomain.Inventory{},
		&orderdomain.Order{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional, events are skipped when no brokers are set
	var publisher ordercommand.EventPublisher
	var kafkaPublisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("brokers", brokers).Msg("Failed to connect to Kafka")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher

		logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher initialized")
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, order events disabled")
	}

	// Redis response cache is optional as well
	var redisClient *redis.Client
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
		})
		defer redisClient.Close()

		logger.Logger.Info().Str("addr", redisAddr).Msg("Redis response cache enabled")
	}

	// Initialize handlers with Wire DI
	productHandler, err := product.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}

	inventoryHandler, err := inventory.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	orderHandler, err := order.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	// Setup router
	router := mux.NewRouter()
	httpmiddleware.Register(router, httpmiddleware.DefaultConfig())

	if redisClient != nil {
		router.Use(httpmiddleware.Cache(redisClient, httpmiddleware.DefaultCacheConfig()))
	}

	// Register routes
	productHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", healthCheck(healthDB)).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	producthttp.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// Catch-all for unmatched routes
	router.NotFoundHandler = httpmiddleware.NotFoundHandler()
	router.MethodNotAllowedHandler = httpmiddleware.NotFoundHandler()

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	corsHandler := httpmiddleware.SetupCORS(httpmiddleware.DefaultConfig())

	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      corsHandler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}

	logger.Logger.Info().Msg("Server stopped")
}

// healthCheck reports service and database health
func healthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.PingContext(r.Context()); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy", "database": "down"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "database": "up"})
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
