package http

import (
	"context"
	"time"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/delivery/http/handler"
	"github.com/aroundme-service/internal/delivery/http/middleware"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler   *handler.HealthHandler
	aroundMeHandler *handler.AroundMeHandler
	locationHandler *handler.LocationHandler
	listingHandler  *handler.ListingHandler
	landmarkHandler *handler.LandmarkHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	aroundMeHandler *handler.AroundMeHandler,
	locationHandler *handler.LocationHandler,
	listingHandler *handler.ListingHandler,
	landmarkHandler *handler.LandmarkHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "AroundMe Service",
		ReadTimeout:  10 * time.Second,
		// отчёт по локации делает десятки запросов к провайдеру
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		healthHandler:   healthHandler,
		aroundMeHandler: aroundMeHandler,
		locationHandler: locationHandler,
		listingHandler:  listingHandler,
		landmarkHandler: landmarkHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	// Geocode / POI / landmarks / score
	api.Post("/geocode", s.aroundMeHandler.Geocode)
	api.Get("/pois/categories", s.aroundMeHandler.Categories)
	api.Post("/pois/nearby", s.aroundMeHandler.NearbyPoi)
	api.Post("/pois/nearby/all", s.aroundMeHandler.NearbyAll)
	api.Post("/landmarks/distance", s.aroundMeHandler.LandmarkDistance)
	api.Get("/landmarks", s.landmarkHandler.List)
	api.Post("/score", s.aroundMeHandler.Score)

	// Locations
	api.Post("/locations", s.locationHandler.Create)
	api.Get("/locations/:id", s.locationHandler.Get)
	api.Get("/locations/:id/report", s.locationHandler.Report)
	api.Delete("/locations/:id", s.locationHandler.Delete)

	// Listings
	api.Post("/listings", s.listingHandler.Create)
	api.Get("/listings", s.listingHandler.List)
	api.Get("/listings/:id", s.listingHandler.Get)
	api.Get("/listings/:id/report", s.listingHandler.Report)
	api.Delete("/listings/:id", s.listingHandler.Delete)
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

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return utils.SendError(c, errors.New(errorCode(code), err.Error(), code))
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
