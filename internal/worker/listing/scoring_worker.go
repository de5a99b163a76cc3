package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"github.com/aroundme-service/internal/worker"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 10
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second
)

// ListingReporter строит отчёт по объявлению
type ListingReporter interface {
	GetListingReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

// ScoringWorker читает stream:listing:score и публикует оценки в stream:listing:scored
type ScoringWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	reporter   ListingReporter
	batchSize  int
}

func NewScoringWorker(
	streamRepo repository.StreamRepository,
	reporter ListingReporter,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ScoringWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &ScoringWorker{
		BaseWorker: worker.NewBaseWorker("listing-scoring", consumerGroup, logger),
		streamRepo: streamRepo,
		reporter:   reporter,
		batchSize:  batchSize,
	}
}

// Start запускает воркер
func (w *ScoringWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting listing scoring worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamListingScore, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.sleep(ctx, errorSleep)
				continue
			}
			if processed == 0 {
				w.sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch обрабатывает одну пачку сообщений и возвращает их количество.
// Сообщение подтверждается только после публикации результата.
func (w *ScoringWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx,
		domain.StreamListingScore, w.ConsumerGroup(), w.ConsumerName(), w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	w.Logger().Debug("Processing batch", zap.Int("message_count", len(messages)))

	acked := make([]string, 0, len(messages))
	for _, msg := range messages {
		var event domain.ListingScoreEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || event.ListingID == uuid.Nil {
			w.Logger().Warn("Invalid score event, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение подтверждаем, чтобы не застревало
			acked = append(acked, msg.ID)
			continue
		}

		result := w.score(ctx, event)
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamListingScored, result); err != nil {
			w.Logger().Error("Failed to publish scored event",
				zap.String("listing_id", event.ListingID.String()),
				zap.Error(err))
			continue
		}
		acked = append(acked, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamListingScore, w.ConsumerGroup(), acked); err != nil {
		// не критично - сообщения будут переобработаны
		w.Logger().Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

func (w *ScoringWorker) score(ctx context.Context, event domain.ListingScoreEvent) domain.ListingScoredEvent {
	result := domain.ListingScoredEvent{
		EventID:   uuid.New(),
		ListingID: event.ListingID,
	}

	report, err := w.reporter.GetListingReport(ctx, event.ListingID)
	if err != nil {
		w.Logger().Warn("Failed to build listing report",
			zap.String("listing_id", event.ListingID.String()),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	result.Score = report.Score.Score
	result.ScoredPlaces = report.Score.ScoredPlaces
	if report.POIs != nil {
		result.Failures = len(report.POIs.Failures)
	}

	w.Logger().Info("Listing scored",
		zap.String("listing_id", event.ListingID.String()),
		zap.Float64("score", result.Score))

	return result
}

func (w *ScoringWorker) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-w.StopChan():
	case <-ctx.Done():
	}
}
