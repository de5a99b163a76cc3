package repository

import "context"

// ResponseCache - постоянное хранилище сырых ответов провайдера.
// Нет TTL и нет вытеснения.
type ResponseCache interface {
	// Get возвращает значение и true, либо nil и false если ключа нет
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set сохраняет значение по ключу, перезаписывая существующее
	Set(ctx context.Context, key string, value []byte) error
}
