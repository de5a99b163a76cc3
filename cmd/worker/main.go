package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/infrastructure/googlemaps"
	"github.com/aroundme-service/internal/infrastructure/openai"
	"github.com/aroundme-service/internal/pkg/logger"
	"github.com/aroundme-service/internal/repository/cache"
	"github.com/aroundme-service/internal/repository/postgres"
	redisRepo "github.com/aroundme-service/internal/repository/redis"
	"github.com/aroundme-service/internal/usecase"
	"github.com/aroundme-service/internal/worker"
	"github.com/aroundme-service/internal/worker/listing"
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
	log, err := logger.New(&cfg.Log, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting listing scoring worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.String("cache_backend", cfg.Cache.Backend))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis (стримы + опционально кеш ответов)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	responseCache, err := cache.NewResponseCache(&cfg.Cache, redisClient, log)
	if err != nil {
		log.Fatal("Failed to initialize response cache", zap.Error(err))
	}

	// 5. Initialize repositories
	locationRepo := postgres.NewLocationRepository(db)
	landmarkRepo := postgres.NewLandmarkRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	maps := googlemaps.NewCachedClient(googlemaps.NewClient(&cfg.Maps, log), responseCache, cfg.Maps.APIKey, log)

	// 6. Initialize use cases
	aroundMeUC := usecase.NewAroundMeUseCase(maps, &cfg.Maps, log)
	landmarkUC := usecase.NewLandmarkUseCase(aroundMeUC, landmarkRepo, openai.NewPlacesSuggester(&cfg.OpenAI, log), log)
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

	// 7. Initialize workers
	scoringWorker := listing.NewScoringWorker(
		streamRepo,
		listingUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(scoringWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
