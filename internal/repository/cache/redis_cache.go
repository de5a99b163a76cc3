package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/aroundme-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisCache struct {
	client redis.Cmdable
	prefix string
	logger *zap.Logger
}

// NewRedisCache хранит ответы провайдера в Redis без TTL
func NewRedisCache(client redis.Cmdable, prefix string, logger *zap.Logger) repository.ResponseCache {
	return &redisCache{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	return val, true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte) error {
	// 0 - без срока жизни
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}
