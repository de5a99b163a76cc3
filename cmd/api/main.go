package main

// @title AroundMe API
// @version 1.0.0
// @description Сервис оценки района для объявлений о недвижимости.
// @description
// @description Основные возможности:
// @description - Геокодирование адресов через Google Maps
// @description - Поиск мест поблизости по категориям с временем пешком
// @description - Расстояния до ориентиров пешком и общественным транспортом
// @description - Оценка района по таблице весов категорий
// @description - Локации, объявления и отчёты по ним

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
	"syscall"
	"time"

	_ "github.com/aroundme-service/docs"
	"github.com/aroundme-service/internal/config"
	httpDelivery "github.com/aroundme-service/internal/delivery/http"
	"github.com/aroundme-service/internal/delivery/http/handler"
	"github.com/aroundme-service/internal/infrastructure/googlemaps"
	"github.com/aroundme-service/internal/infrastructure/openai"
	"github.com/aroundme-service/internal/pkg/logger"
	"github.com/aroundme-service/internal/repository/cache"
	"github.com/aroundme-service/internal/repository/postgres"
	"github.com/aroundme-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(&cfg.Log, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting AroundMe API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Int("maps_max_concurrency", cfg.Maps.MaxConcurrency),
	)

	// 3. Connect to PostgreSQL and apply migrations
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(ctx); err != nil {
		cancel()
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	cancel()

	checks := map[string]handler.HealthChecker{"postgres": db}

	// 4. Connect to Redis (только для redis-бэкенда кеша)
	var redisClient *cache.Redis
	if cfg.Cache.Backend == config.CacheBackendRedis {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		checks["redis"] = redisClient
	}

	// 5. Maps provider: HTTP client behind the response cache
	responseCache, err := cache.NewResponseCache(&cfg.Cache, redisClient, log)
	if err != nil {
		log.Fatal("Failed to initialize response cache", zap.Error(err))
	}
	maps := googlemaps.NewCachedClient(
		googlemaps.NewClient(&cfg.Maps, log),
		responseCache,
		cfg.Maps.APIKey,
		log,
	)
	suggester := openai.NewPlacesSuggester(&cfg.OpenAI, log)

	// 6. Initialize Repositories
	locationRepo := postgres.NewLocationRepository(db)
	landmarkRepo := postgres.NewLandmarkRepository(db)
	listingRepo := postgres.NewListingRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	aroundMeUC := usecase.NewAroundMeUseCase(maps, &cfg.Maps, log)
	landmarkUC := usecase.NewLandmarkUseCase(aroundMeUC, landmarkRepo, suggester, log)
	locationUC := usecase.NewLocationUseCase(aroundMeUC, locationRepo, landmarkRepo, cfg.Maps.DefaultRadius, log)
	listingUC := usecase.NewListingUseCase(
		aroundMeUC,
		locationUC,
		landmarkUC,
		listingRepo,
		locationRepo,
		landmarkRepo,
		cfg.Maps.DefaultRadius,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(checks, log),
		handler.NewAroundMeHandler(aroundMeUC, log),
		handler.NewLocationHandler(locationUC, log),
		handler.NewListingHandler(listingUC, log),
		handler.NewLandmarkHandler(landmarkUC, log),
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
