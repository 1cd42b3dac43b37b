package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/usecase"
	"github.com/visual-twin/internal/worker"
)

const (
	maxBatchSize         = 10                     // максимум сообщений за раз
	emptyQueueSleep      = 200 * time.Millisecond // пауза если очередь пуста
	errorSleep           = time.Second            // пауза после ошибки чтения
	pendingMinIdle       = time.Minute            // сообщение без ack дольше этого считается брошенным
	pendingCheckInterval = 30 * time.Second       // период проверки pending
)

// Processor - импорт одного набора данных (usecase.ImportProcessor)
type Processor interface {
	Process(ctx context.Context, event *domain.RouteImportEvent) (*domain.RouteImportedEvent, error)
}

var _ worker.Worker = (*ImportWorker)(nil)

// ImportWorker читает stream:route:import, импортирует CSV в SQL хранилище
// и публикует итог в stream:route:imported
type ImportWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	processor  Processor
	maxRetries int
	retryDelay time.Duration
}

// NewImportWorker создает новый ImportWorker. maxRetries - число повторов после первой попытки.
func NewImportWorker(
	streamRepo repository.StreamRepository,
	processor Processor,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ImportWorker {
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &ImportWorker{
		BaseWorker: worker.NewBaseWorker("route-import", consumerGroup, logger),
		streamRepo: streamRepo,
		processor:  processor,
		maxRetries: maxRetries,
		retryDelay: 500 * time.Millisecond,
	}
}

// SetRetryDelay меняет базовую паузу между повторами (растёт линейно с номером попытки)
func (w *ImportWorker) SetRetryDelay(d time.Duration) {
	w.retryDelay = d
}

// Start запускает воркер
func (w *ImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ImportWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_batch_size", maxBatchSize),
		zap.Int("max_retries", w.maxRetries))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteImport, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.recoverPending(ctx)
	lastPendingCheck := time.Now()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			if time.Since(lastPendingCheck) >= pendingCheckInterval {
				w.recoverPending(ctx)
				lastPendingCheck = time.Now()
			}

			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Wait(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.Wait(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает и обрабатывает пачку сообщений, возвращает их количество
func (w *ImportWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRouteImport,
		w.ConsumerGroup(),
		w.ConsumerName(),
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	if _, err := w.handleMessages(ctx, messages); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

// RecoverPending забирает сообщения, брошенные без ack (процесс остановлен посреди импорта),
// и обрабатывает их как обычную пачку. Возвращает число подтверждённых сообщений.
func (w *ImportWorker) RecoverPending(ctx context.Context) (int, error) {
	total := 0
	for !w.IsStopped() && ctx.Err() == nil {
		messages, err := w.streamRepo.ClaimPending(
			ctx,
			domain.StreamRouteImport,
			w.ConsumerGroup(),
			w.ConsumerName(),
			pendingMinIdle,
			maxBatchSize,
		)
		if err != nil {
			return total, fmt.Errorf("failed to claim pending messages: %w", err)
		}
		if len(messages) == 0 {
			return total, nil
		}

		w.Logger().Info("Recovering pending messages", zap.Int("message_count", len(messages)))

		handled, err := w.handleMessages(ctx, messages)
		total += handled
		if err != nil {
			return total, fmt.Errorf("failed to ack recovered messages: %w", err)
		}
		if handled < len(messages) {
			return total, nil
		}
	}
	return total, nil
}

func (w *ImportWorker) recoverPending(ctx context.Context) {
	if _, err := w.RecoverPending(ctx); err != nil {
		w.Logger().Error("Failed to recover pending messages", zap.Error(err))
	}
}

// handleMessages импортирует сообщения по порядку и подтверждает обработанные.
// При остановке посреди пачки остаток не подтверждается и забирается позже через RecoverPending.
func (w *ImportWorker) handleMessages(ctx context.Context, messages []domain.StreamMessage) (int, error) {
	logger := w.Logger()

	handled := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			// битое сообщение подтверждаем, чтобы не застревало в pending
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			handled = append(handled, msg.ID)
			continue
		}

		result := w.importWithRetry(ctx, event)
		if result.Error != "" && (ctx.Err() != nil || w.IsStopped()) {
			break
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamRouteImported, result); err != nil {
			logger.Error("Failed to publish import result",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
		}
		handled = append(handled, msg.ID)
	}

	if len(handled) == 0 {
		return 0, nil
	}
	if err := w.streamRepo.AckMessages(ctx, domain.StreamRouteImport, w.ConsumerGroup(), handled); err != nil {
		return 0, err
	}
	return len(handled), nil
}

// importWithRetry повторяет импорт при временных ошибках, итог всегда не nil
func (w *ImportWorker) importWithRetry(ctx context.Context, event *domain.RouteImportEvent) *domain.RouteImportedEvent {
	logger := w.Logger().With(
		zap.String("request_id", event.RequestID.String()),
		zap.String("dataset_id", event.DatasetID))

	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying import",
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			if !w.Wait(ctx, time.Duration(attempt)*w.retryDelay) {
				break
			}
		}

		result, err := w.processor.Process(ctx, event)
		if err == nil {
			return result
		}
		lastErr = err

		if usecase.IsPermanentImportError(err) {
			logger.Warn("Import rejected", zap.Error(err))
			break
		}
	}

	logger.Error("Import failed", zap.Error(lastErr))
	return &domain.RouteImportedEvent{
		RequestID: event.RequestID,
		DatasetID: event.DatasetID,
		Error:     lastErr.Error(),
	}
}

// parseMessage парсит сообщение из стрима в RouteImportEvent
func parseMessage(msg domain.StreamMessage) (*domain.RouteImportEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty message payload")
	}

	var event domain.RouteImportEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	return &event, nil
}
