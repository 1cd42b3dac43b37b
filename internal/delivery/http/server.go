package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/delivery/http/handler"
	"github.com/visual-twin/internal/delivery/http/middleware"
	"github.com/visual-twin/internal/pkg/errors"
	"github.com/visual-twin/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор обработчиков сервера. Import и Dashboard могут быть nil.
type Handlers struct {
	Route     *handler.RouteHandler
	Chat      *handler.ChatHandler
	Import    *handler.ImportHandler
	Health    *handler.HealthHandler
	Dashboard *handler.DashboardHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Visual Twin",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Видео станций и изображения зон
	if s.config.Media.Dir != "" {
		s.app.Static("/media", s.config.Media.Dir)
	}

	// Dashboard
	s.app.Get("/", func(c *fiber.Ctx) error {
		if s.handlers.Dashboard != nil {
			return s.handlers.Dashboard.Render(c)
		}
		return c.Redirect("/swagger/index.html")
	})

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Route layer
	api.Get("/datasets", s.handlers.Route.ListDatasets)
	api.Get("/datasets/:id/layer", s.handlers.Route.GetLayer)
	api.Get("/datasets/:id/layer.geojson", s.handlers.Route.GetLayerGeoJSON)
	api.Post("/annotate", s.handlers.Route.Annotate)

	// Import
	if s.handlers.Import != nil {
		api.Post("/datasets/import", s.handlers.Import.Import)
	}

	// Chat
	api.Post("/chat", s.handlers.Chat.Chat)
	api.Get("/chat/:session_id/history", s.handlers.Chat.History)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404, 405, паники) в формате utils.ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := err.Error()

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		appErr := errors.ErrInternalServer
		switch code {
		case fiber.StatusNotFound:
			appErr = errors.New("NOT_FOUND", "Route not found", code)
		case fiber.StatusMethodNotAllowed:
			appErr = errors.New("METHOD_NOT_ALLOWED", "Method not allowed", code)
		case fiber.StatusRequestEntityTooLarge:
			appErr = errors.New("PAYLOAD_TOO_LARGE", "Request body too large", code)
		default:
			if code < fiber.StatusInternalServerError {
				appErr = errors.New("REQUEST_FAILED", message, code)
			}
		}

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}
