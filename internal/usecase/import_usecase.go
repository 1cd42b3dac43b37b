package usecase

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/pkg/errors"
	"github.com/visual-twin/internal/usecase/dto"
)

const csvExt = ".csv"

// DatasetFileReader - чтение файла набора данных (csvsource.RouteRepository)
type DatasetFileReader interface {
	ReadFile(ctx context.Context, name, id string) (*domain.Dataset, error)
}

// LayerInvalidator - сброс закешированных слоев набора данных
type LayerInvalidator interface {
	InvalidateDataset(ctx context.Context, datasetID string) error
}

// ImportUseCase - постановка импорта CSV в очередь (сторона API)
type ImportUseCase struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewImportUseCase(streamRepo repository.StreamRepository, logger *zap.Logger) *ImportUseCase {
	return &ImportUseCase{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Enqueue публикует RouteImportEvent в stream:route:import.
// Без dataset_id идентификатор берется из имени файла без .csv.
func (uc *ImportUseCase) Enqueue(ctx context.Context, req dto.ImportRequest) (*dto.ImportResponse, error) {
	file := strings.TrimSpace(req.File)
	if file != filepath.Base(file) || file == "." || file == ".." {
		return nil, translateDatasetError(domain.ErrInvalidFileName)
	}
	if !strings.EqualFold(filepath.Ext(file), csvExt) {
		return nil, errors.ErrInvalidRequest.WithMessage("file must have a .csv extension")
	}

	datasetID := strings.TrimSpace(req.DatasetID)
	if datasetID == "" {
		datasetID = strings.TrimSuffix(file, filepath.Ext(file))
	}

	event := domain.RouteImportEvent{
		RequestID: uuid.New(),
		DatasetID: datasetID,
		File:      file,
	}
	if err := event.Validate(); err != nil {
		return nil, translateDatasetError(err)
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamRouteImport, event); err != nil {
		uc.logger.Error("Failed to enqueue dataset import",
			zap.String("dataset_id", datasetID),
			zap.Error(err))
		return nil, errors.ErrStreamError
	}

	uc.logger.Info("Dataset import enqueued",
		zap.String("request_id", event.RequestID.String()),
		zap.String("dataset_id", datasetID),
		zap.String("file", file))

	return &dto.ImportResponse{
		RequestID: event.RequestID,
		DatasetID: datasetID,
		File:      file,
		Stream:    domain.StreamRouteImport,
	}, nil
}

// ImportProcessor - выполнение импорта: CSV -> SQL хранилище -> сброс кеша (сторона воркера)
type ImportProcessor struct {
	reader      DatasetFileReader
	store       repository.RouteStore
	invalidator LayerInvalidator
	logger      *zap.Logger
}

// NewImportProcessor создает ImportProcessor. invalidator может быть nil.
func NewImportProcessor(
	reader DatasetFileReader,
	store repository.RouteStore,
	invalidator LayerInvalidator,
	logger *zap.Logger,
) *ImportProcessor {
	return &ImportProcessor{
		reader:      reader,
		store:       store,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Process импортирует набор данных и возвращает итог для stream:route:imported
func (p *ImportProcessor) Process(ctx context.Context, event *domain.RouteImportEvent) (*domain.RouteImportedEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	dataset, err := p.reader.ReadFile(ctx, event.File, event.DatasetID)
	if err != nil {
		return nil, err
	}
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	if err := p.store.SaveDataset(ctx, dataset); err != nil {
		return nil, err
	}

	if p.invalidator != nil {
		if err := p.invalidator.InvalidateDataset(ctx, dataset.ID); err != nil {
			p.logger.Warn("Imported dataset but failed to drop cached layers",
				zap.String("dataset_id", dataset.ID),
				zap.Error(err))
		}
	}

	result := &domain.RouteImportedEvent{
		RequestID: event.RequestID,
		DatasetID: dataset.ID,
		Points:    len(dataset.Route),
		Stations:  len(dataset.Stations),
		Zones:     len(domain.HighVibrationSegments(dataset.Vibrations)),
	}

	p.logger.Info("Dataset imported",
		zap.String("request_id", event.RequestID.String()),
		zap.String("dataset_id", dataset.ID),
		zap.Int("points", result.Points),
		zap.Int("stations", result.Stations),
		zap.Int("zones", result.Zones))

	return result, nil
}

// IsPermanentImportError - ошибки, которые не исправятся повтором
func IsPermanentImportError(err error) bool {
	for _, target := range []error{
		domain.ErrDatasetNotFound,
		domain.ErrMalformedData,
		domain.ErrLengthMismatch,
		domain.ErrEmptyRoute,
		domain.ErrInvalidDatasetID,
		domain.ErrInvalidFileName,
		domain.ErrEmptyImportFile,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
