package repository

import (
	"context"
	"time"

	"github.com/visual-twin/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)
}

// ChatHistoryRepository хранит историю чата по сессиям
type ChatHistoryRepository interface {
	// AppendTurns добавляет реплики в конец истории и продлевает TTL
	AppendTurns(ctx context.Context, sessionID string, turns []domain.ChatTurn, ttl time.Duration) error

	// GetHistory возвращает историю сессии, пустой срез если её нет
	GetHistory(ctx context.Context, sessionID string) ([]domain.ChatTurn, error)
}
