package cache

import (
	"fmt"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewResponseCache выбирает бэкенд кеша ответов провайдера по конфигу.
// Для redis нужен уже подключённый клиент.
func NewResponseCache(cfg *config.CacheConfig, redisClient *Redis, logger *zap.Logger) (repository.ResponseCache, error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis cache backend requires a redis connection")
		}
		logger.Info("Using Redis response cache", zap.String("prefix", cfg.RedisPrefix))
		return redisClient.ResponseCache(cfg.RedisPrefix), nil
	case config.CacheBackendDisk, "":
		return NewDiskCache(afero.NewOsFs(), cfg.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
