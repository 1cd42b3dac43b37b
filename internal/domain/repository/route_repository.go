package repository

import (
	"context"

	"github.com/visual-twin/internal/domain"
)

// RouteRepository - источник наборов данных маршрута (CSV, PostgreSQL, SQLite)
type RouteRepository interface {
	// GetDataset возвращает набор данных, domain.ErrDatasetNotFound если его нет
	GetDataset(ctx context.Context, id string) (*domain.Dataset, error)

	// ListDatasets возвращает идентификаторы доступных наборов
	ListDatasets(ctx context.Context) ([]string, error)
}

// RouteStore - хранилище, в которое можно импортировать наборы данных
type RouteStore interface {
	RouteRepository

	// SaveDataset заменяет набор данных целиком
	SaveDataset(ctx context.Context, dataset *domain.Dataset) error
}
