// Package worker - фоновые обработчики Redis Streams и менеджер их жизненного цикла
package worker

import (
	"context"
)

// Worker - фоновый обработчик, которым управляет WorkerManager
type Worker interface {
	// Start блокируется до Stop или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении, повторный вызов ничего не делает
	Stop() error

	// Name - имя для логов
	Name() string
}
