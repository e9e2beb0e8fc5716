package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"catalog-service/internal/config"
	"catalog-service/internal/handlers"
	"catalog-service/internal/ingest"
	"catalog-service/internal/middleware"
	"catalog-service/internal/observability"
	"catalog-service/internal/store"
	"catalog-service/internal/whatsapp"
)

// @title Storefront Catalog API
// @version 1.0.0
// @description Catalog service ingesting published Google Sheets into a browsable product API
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client for snapshot persistence
	var redisClient *redis.Client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (catalog persistence disabled)", err)
	} else {
		redisClient = redis.NewClient(redisOpts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("WARNING: Failed to connect to Redis: %v (catalog persistence disabled)", err)
			redisClient = nil
		} else {
			log.Println("✓ Redis connected successfully")
		}
		cancel()
	}

	// Initialize metrics
	observability.Register()

	// Initialize ingestion and the catalog store
	ingestor := ingest.New(logger, cfg.MarkupPercent, cfg.FetchTimeout)
	snapshots := store.NewSnapshotStore(redisClient)
	catalog := store.New(ingestor, config.CategorySheets, snapshots, logger, cfg.CacheDuration)

	// Serve the persisted snapshot right away and renew it in the background.
	catalog.Rehydrate(context.Background())
	go catalog.Refresh(context.Background(), false)

	inquiry := whatsapp.New(cfg.WhatsAppPhone)
	catalogHandler := handlers.NewCatalogHandler(catalog, inquiry)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	// API routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/export", catalogHandler.ExportProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		v1.GET("/categories", catalogHandler.GetCategories)
		v1.GET("/brands", catalogHandler.GetBrands)

		catalogRoutes := v1.Group("/catalog")
		{
			catalogRoutes.POST("/refresh", catalogHandler.RefreshCatalog)
			catalogRoutes.GET("/status", catalogHandler.GetStatus)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Catalog service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	logger.Info("Shutting down catalog service")
}
