package main

// @title Visual Twin API
// @version 1.0.0
// @description Railway 'Visual Twin': маршрут Cambridge - London Kings Cross на карте, окраска по уровню вибрации, зоны высокой вибрации, активность станций и чат-бот.
// @description
// @description Основные возможности:
// @description - Слой карты: маркеры, окраска маршрута по вибрации, зоны высокой вибрации, станции
// @description - Экспорт слоя в GeoJSON
// @description - Чат-бот: заготовленные ответы или модель генерации текста
// @description - Импорт CSV в PostgreSQL/SQLite через Redis Streams

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/visual-twin/docs/swagger"
	"github.com/visual-twin/internal/config"
	httpDelivery "github.com/visual-twin/internal/delivery/http"
	"github.com/visual-twin/internal/delivery/http/handler"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/infrastructure/media"
	"github.com/visual-twin/internal/infrastructure/textgen"
	"github.com/visual-twin/internal/pkg/logger"
	"github.com/visual-twin/internal/repository/cache"
	"github.com/visual-twin/internal/repository/csvsource"
	"github.com/visual-twin/internal/repository/postgres"
	redisRepo "github.com/visual-twin/internal/repository/redis"
	"github.com/visual-twin/internal/repository/sqlite"
	"github.com/visual-twin/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "visual-twin-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Visual Twin API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Data.Source),
		zap.Bool("textgen_enabled", cfg.TextGenEnabled()),
	)

	checks := make(map[string]handler.HealthCheck)

	// 3. Route data source
	routeRepo, closeRoutes, err := openRouteRepository(cfg, log, checks)
	if err != nil {
		log.Fatal("Failed to open route data source", zap.Error(err))
	}
	defer closeRoutes()
	log.Info("Route data source ready", zap.String("source", cfg.Data.Source))

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
	checks["redis"] = redisClient.Health
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, check := range checks {
		if err := check(ctx); err != nil {
			log.Fatal("Health check failed", zap.String("dependency", name), zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	historyRepo := cache.NewChatHistoryRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	mediaRepo, err := media.Load(&cfg.Media, log)
	if err != nil {
		log.Fatal("Failed to load media catalog", zap.Error(err))
	}

	var generator repository.TextGenerator
	if cfg.TextGenEnabled() {
		generator = textgen.NewClient(&cfg.TextGen, log)
		log.Info("Text generation enabled", zap.String("model", generator.Model()))
	} else {
		log.Info("Text generation disabled, advanced chatbot unavailable")
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	annotationUC := usecase.NewAnnotationUseCase(
		routeRepo,
		cacheRepo,
		mediaRepo,
		cfg.Map,
		cfg.Data.DefaultDataset,
		cfg.Cache.LayerCacheTTL,
		log,
	)

	chatbotUC := usecase.NewChatbotUseCase(
		generator,
		cacheRepo,
		historyRepo,
		cfg.Cache.ChatCacheTTL,
		cfg.Cache.ChatHistoryTTL,
		log,
	)

	importUC := usecase.NewImportUseCase(streamRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Route:  handler.NewRouteHandler(annotationUC, log),
		Chat:   handler.NewChatHandler(chatbotUC, log),
		Import: handler.NewImportHandler(importUC, log),
		Health: handler.NewHealthHandler("visual-twin-api", checks, log),
	}

	dashboardHandler, err := handler.NewDashboardHandler(
		filepath.Join("templates", "dashboard"),
		handler.NewDashboardPage(cfg),
		log,
	)
	if err != nil {
		log.Warn("Failed to initialize dashboard handler, falling back to swagger", zap.Error(err))
	} else {
		handlers.Dashboard = dashboardHandler
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// openRouteRepository открывает источник наборов данных по DATA_SOURCE и регистрирует его health check
func openRouteRepository(
	cfg *config.Config,
	log *zap.Logger,
	checks map[string]handler.HealthCheck,
) (repository.RouteRepository, func(), error) {
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		checks["postgres"] = db.Health
		return postgres.NewRouteRepository(db), closer(db.Close, "PostgreSQL", log), nil

	case config.DataSourceSQLite:
		db, err := sqlite.New(&cfg.SQLite, log)
		if err != nil {
			return nil, nil, err
		}
		checks["sqlite"] = db.Health
		return sqlite.NewRouteRepository(db), closer(db.Close, "SQLite", log), nil

	default:
		return csvsource.NewRouteRepository(cfg.Data.Dir, log), func() {}, nil
	}
}

func closer(closeFn func() error, name string, log *zap.Logger) func() {
	return func() {
		if err := closeFn(); err != nil {
			log.Error("Failed to close connection", zap.String("db", name), zap.Error(err))
		}
	}
}
