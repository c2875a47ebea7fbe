// @title Storefront Catalog API
// @version 1.0
// @description Product listing and faceted filtering for the eyewear storefront
// @host localhost:8081
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalog_cache "github.com/digitalbuddiesspune/stylishtouches-sub000/cache"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/consumers"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/middleware"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/routes/ecommerce_routes"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/services"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.LoadAppConfig()

	// Product store
	backend, err := store.NewBackend(cfg.StoreKind, cfg.CatalogFile)
	if err != nil {
		log.Fatalf("❌ Failed to initialize product store: %v", err)
	}
	defer backend.Close()
	log.Printf("✅ Product store ready (%s)", cfg.StoreKind)

	catalog_cache.TTL = cfg.CacheTTL
	if err := services.InitCatalogService(backend, services.CatalogOptions{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
		QueryTimeout:    cfg.QueryTimeout,
	}); err != nil {
		log.Fatalf("Failed to initialize catalog service: %v", err)
	}
	log.Println("✅ Catalog service initialized")

	// Redis connection (rate limiting)
	if cfg.RateLimitEnabled {
		if err := config.ConnectRedis(); err != nil {
			log.Printf("⚠️ %v (rate limiting disabled)", err)
		} else {
			defer config.CloseRedis()
		}
	}

	// Catalog change events
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if cfg.RabbitMQURL != "" {
		go consumers.RunCatalogConsumer(consumerCtx, consumers.RabbitDeliveries(cfg), 5*time.Second)
	} else {
		log.Println("⚠️ RABBITMQ_URL not set, snapshots expire by TTL only")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.PrometheusMiddleware())

	root := router.Group("")
	ecommerce_routes.SetupHealthRoutes(root, backend)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public storefront, mounted where the frontend expects it and under the versioned API
	storefront := router.Group("")
	if cfg.RateLimitEnabled {
		storefront.Use(middleware.RateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}
	ecommerce_routes.SetupStorefrontRoutes(storefront)

	versioned := router.Group("/api/v1/store")
	if cfg.RateLimitEnabled {
		versioned.Use(middleware.RateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}
	ecommerce_routes.SetupStorefrontRoutes(versioned)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		fmt.Printf("🚀 Server is running on http://localhost:%s\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	stopConsumer()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
