package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/internal/config"
	"solar-storefront-backend/internal/logger"
	"solar-storefront-backend/internal/queue"
	"solar-storefront-backend/services"
)

// The worker processes knowledge base rebuild tasks and enqueues them on a
// fixed schedule, so web replicas always find a warm snapshot in Redis.
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

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Worker requires Redis:", err)
	}

	store := catalog.NewMongoStore(mongoClient.Database(cfg.DBName), cfg.CatalogFetchTimeout)
	knowledge := services.NewKnowledgeService(store, rdb, cfg.KBCacheTTL, nil)
	export := services.NewExportService(store, knowledge)
	processor := queue.NewTaskProcessor(knowledge, export)

	redisOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskKnowledgeRebuild, processor.ProcessKnowledgeRebuild)
	mux.HandleFunc(queue.TaskCatalogExport, processor.ProcessCatalogExport)

	client := asynq.NewClient(redisOpt)
	defer client.Close()

	scheduler := queue.NewScheduler()
	err = scheduler.ScheduleInterval("knowledge-rebuild", cfg.KBRefreshInterval, func() error {
		task, err := queue.NewKnowledgeRebuildTask("scheduled")
		if err != nil {
			return err
		}
		_, err = client.Enqueue(task)
		return err
	})
	if err != nil {
		log.Fatal("Failed to schedule rebuild job:", err)
	}

	err = scheduler.ScheduleInterval("catalog-export-warmup", cfg.KBRefreshInterval, func() error {
		task, err := queue.NewCatalogExportTask("scheduled")
		if err != nil {
			return err
		}
		_, err = client.Enqueue(task)
		return err
	})
	if err != nil {
		log.Fatal("Failed to schedule export warm-up job:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	go func() {
		logger.Info("worker starting", "refresh_interval", cfg.KBRefreshInterval.String())
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Worker failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker")
	srv.Shutdown()
}
