package worker

import (
	"context"
)

// Worker - потребитель Redis Stream
type Worker interface {
	// Start блокируется до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться после текущего сообщения
	Stop() error

	Name() string
}
