package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/pkg/logger"
	"github.com/visual-twin/internal/repository/cache"
	"github.com/visual-twin/internal/repository/csvsource"
	"github.com/visual-twin/internal/repository/postgres"
	redisRepo "github.com/visual-twin/internal/repository/redis"
	"github.com/visual-twin/internal/repository/sqlite"
	"github.com/visual-twin/internal/usecase"
	"github.com/visual-twin/internal/worker"
	"github.com/visual-twin/internal/worker/importer"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "visual-twin-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Import Worker")
	log.Info("Configuration loaded",
		zap.String("data_source", cfg.Data.Source),
		zap.String("data_dir", cfg.Data.Dir),
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Open SQL store (импорт возможен только в PostgreSQL или SQLite)
	var store repository.RouteStore
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		store = postgres.NewRouteRepository(db)

	case config.DataSourceSQLite:
		db, err := sqlite.New(&cfg.SQLite, log)
		if err != nil {
			log.Fatal("Failed to open SQLite", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close SQLite", zap.Error(err))
			}
		}()
		store = sqlite.NewRouteRepository(db)

	default:
		log.Fatal("Import worker needs a SQL store, set DATA_SOURCE=postgres or DATA_SOURCE=sqlite",
			zap.String("data_source", cfg.Data.Source))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	fileReader := csvsource.NewRouteRepository(cfg.Data.Dir, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	// AnnotationUseCase здесь нужен только для сброса кеша слоев импортированного набора
	annotationUC := usecase.NewAnnotationUseCase(
		store,
		cacheRepo,
		nil,
		cfg.Map,
		cfg.Data.DefaultDataset,
		cfg.Cache.LayerCacheTTL,
		log,
	)
	processor := usecase.NewImportProcessor(fileReader, store, annotationUC, log)

	// 7. Initialize workers
	importWorker := importer.NewImportWorker(
		streamRepo,
		processor,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	if err := workerManager.Register(importWorker); err != nil {
		log.Fatal("Failed to register worker", zap.Error(err))
	}

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Воркеры могут завершиться сами (например, не удалось создать consumer group)
	exited := make(chan struct{})
	go func() {
		workerManager.Wait()
		close(exited)
	}()

	select {
	case <-sigChan:
		log.Info("Received shutdown signal")
	case <-exited:
		log.Warn("All workers exited")
	}

	// Сначала останавливаем воркеры, чтобы текущий импорт завершился и был подтвержден
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	if err := workerManager.Err(); err != nil {
		log.Error("Some workers exited with errors", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
