package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/internal/config"
	"solar-storefront-backend/internal/logger"
	"solar-storefront-backend/internal/telemetry"
	"solar-storefront-backend/middleware"
	"solar-storefront-backend/routes"
	"solar-storefront-backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	mongoClient, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	}()

	// Redis is optional: without it the snapshot cache is in-process only
	// and rate limiting falls back to local token buckets.
	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, running without shared cache", "error", err)
		rdb = nil
	}

	store := catalog.NewMongoStore(mongoClient.Database(cfg.DBName), cfg.CatalogFetchTimeout)
	if cfg.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := store.Seed(ctx); err != nil {
			logger.Warn("catalog seeding failed", "error", err)
		}
		cancel()
	}

	var shutdownTracer func()
	if cfg.TracingEnabled {
		shutdownTracer, err = telemetry.InitTracer("solar-storefront-backend", cfg)
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		}
	}
	if shutdownTracer != nil {
		defer shutdownTracer()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		logger.Warn("metrics disabled", "error", err)
		metrics = nil
	}

	knowledge := services.NewKnowledgeService(store, rdb, cfg.KBCacheTTL, metrics)
	contextSvc := services.NewContextService(knowledge, store, cfg.MaxContextChunks)
	responder := services.NewResponderService(store)
	export := services.NewExportService(store, knowledge)

	var asynqClient *asynq.Client
	if rdb != nil {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     rdb.Options().Addr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer asynqClient.Close()
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	if cfg.TracingEnabled {
		router.Use(middleware.TracingMiddleware())
		router.Use(middleware.EnrichTrace())
	}
	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}
	router.Use(middleware.RateLimitMiddleware(rdb, cfg))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	routes.SetupChatRoutes(router, contextSvc, responder, metrics)
	routes.SetupCatalogRoutes(router, store)
	routes.SetupAdminRoutes(router, cfg, knowledge, export, asynqClient)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server exited")
}
