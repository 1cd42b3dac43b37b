package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout - максимальное время ожидания завершения воркеров
var shutdownTimeout = 30 * time.Second

// WorkerManager запускает воркеры в отдельных горутинах и останавливает их с таймаутом
type WorkerManager struct {
	workers []Worker
	names   map[string]struct{}
	errs    []error
	logger  *zap.Logger
	wg      sync.WaitGroup
	mu      sync.Mutex
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers: make([]Worker, 0),
		names:   make(map[string]struct{}),
		logger:  logger,
	}
}

// Register добавляет воркер, имена должны быть уникальны
func (m *WorkerManager) Register(w Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.names[w.Name()]; ok {
		return fmt.Errorf("worker %q already registered", w.Name())
	}
	m.names[w.Name()] = struct{}{}
	m.workers = append(m.workers, w)

	m.logger.Info("Worker registered", zap.String("name", w.Name()))
	return nil
}

// Len возвращает число зарегистрированных воркеров
func (m *WorkerManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

// Start запускает все зарегистрированные воркеры и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return errors.New("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go m.run(ctx, w)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()

	m.logger.Info("Starting worker", zap.String("name", w.Name()))
	err := w.Start(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		m.logger.Info("Worker exited", zap.String("name", w.Name()))
		return
	}

	m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))

	m.mu.Lock()
	m.errs = append(m.errs, fmt.Errorf("%s: %w", w.Name(), err))
	m.mu.Unlock()
}

// Wait блокируется, пока все запущенные воркеры не завершатся
func (m *WorkerManager) Wait() {
	m.wg.Wait()
}

// Err - ошибки воркеров, завершившихся аварийно (отмена контекста не считается)
func (m *WorkerManager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Join(m.errs...)
}

// Stop сигнализирует всем воркерам и ждёт их не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-time.After(shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out, some imports may be left pending",
			zap.Duration("timeout", shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", shutdownTimeout)
	}
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()

	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}
