package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis - общее подключение для кеша ответов и стримов воркера
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

const clientName = "aroundme"

func redisOptions(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: clientName,
	}
}

func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(redisOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Int("db", cfg.DB),
	)

	return &Redis{
		client: client,
		logger: logger,
	}, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// ResponseCache - кеш ответов провайдера поверх этого подключения
func (r *Redis) ResponseCache(prefix string) repository.ResponseCache {
	return NewRedisCache(r.client, prefix, r.logger)
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
