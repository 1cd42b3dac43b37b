package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRouteImport   = "stream:route:import"
	StreamRouteImported = "stream:route:imported"
)

// RouteImportEvent - входящее событие на импорт CSV в SQL хранилище
type RouteImportEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	DatasetID string    `json:"dataset_id"`
	File      string    `json:"file"`
}

// Validate проверяет обязательные поля события
func (e *RouteImportEvent) Validate() error {
	if e.File == "" {
		return ErrEmptyImportFile
	}
	return ValidateDatasetID(e.DatasetID)
}

// RouteImportedEvent - результат импорта
type RouteImportedEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	DatasetID string    `json:"dataset_id"`
	Points    int       `json:"points"`
	Stations  int       `json:"stations"`
	Zones     int       `json:"zones"`
	Error     string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
