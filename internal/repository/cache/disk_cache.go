package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/aroundme-service/internal/domain/repository"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	maxFileNameLen   = 200
	keptKeyPrefixLen = 136
)

type diskCache struct {
	fs     afero.Fs
	root   string
	logger *zap.Logger
}

// NewDiskCache создает файловый кеш: один файл на ключ в каталоге root.
// Каталог создаётся, если его нет.
func NewDiskCache(fsys afero.Fs, root string, logger *zap.Logger) (repository.ResponseCache, error) {
	exists, err := afero.DirExists(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat cache dir %s: %w", root, err)
	}
	if !exists {
		if err := fsys.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache dir %s: %w", root, err)
		}
	}

	logger.Info("Disk cache ready", zap.String("root", root))

	return &diskCache{
		fs:     fsys,
		root:   root,
		logger: logger,
	}, nil
}

func (c *diskCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := afero.ReadFile(c.fs, c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	return data, true, nil
}

func (c *diskCache) Set(_ context.Context, key string, value []byte) error {
	if err := afero.WriteFile(c.fs, c.path(key), value, 0o644); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	c.logger.Debug("Cache set", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (c *diskCache) path(key string) string {
	return filepath.Join(c.root, fileName(key))
}

// fileName укорачивает длинные ключи до допустимой длины имени файла
func fileName(key string) string {
	if len(key) <= maxFileNameLen {
		return key
	}
	sum := sha256.Sum256([]byte(key))
	return key[:keptKeyPrefixLen] + "_" + hex.EncodeToString(sum[:])
}
