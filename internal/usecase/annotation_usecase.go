package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/pkg/errors"
	"github.com/visual-twin/internal/pkg/utils"
	"github.com/visual-twin/internal/usecase/dto"
)

const (
	lineWeight          = 5
	lineOpacity         = 0.8
	plainRouteColor     = "darkgreen"
	startMarkerColor    = "green"
	endMarkerColor      = "red"
	stationFillColor    = "red"
	stationFillOpacity  = 0.5
	inlineDatasetID     = "inline"
	layerCacheKeyPrefix = "layer:"
)

var legend = []dto.LegendItem{
	{Band: domain.BandLow, Color: domain.BandLow.Color(), Label: "< 0.2"},
	{Band: domain.BandModerate, Color: domain.BandModerate.Color(), Label: "0.2 - 0.3"},
	{Band: domain.BandElevated, Color: domain.BandElevated.Color(), Label: "0.3 - 0.4"},
	{Band: domain.BandHigh, Color: domain.BandHigh.Color(), Label: ">= 0.4"},
}

// AnnotationUseCase - сборка слоя карты: окраска маршрута, зоны вибрации, станции
type AnnotationUseCase struct {
	routeRepo      repository.RouteRepository
	cacheRepo      repository.CacheRepository
	mediaRepo      repository.MediaRepository
	mapCfg         config.MapConfig
	defaultDataset string
	layerTTL       time.Duration
	logger         *zap.Logger
}

// NewAnnotationUseCase создает AnnotationUseCase. cacheRepo может быть nil.
func NewAnnotationUseCase(
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	mediaRepo repository.MediaRepository,
	mapCfg config.MapConfig,
	defaultDataset string,
	layerTTL time.Duration,
	logger *zap.Logger,
) *AnnotationUseCase {
	return &AnnotationUseCase{
		routeRepo:      routeRepo,
		cacheRepo:      cacheRepo,
		mediaRepo:      mediaRepo,
		mapCfg:         mapCfg,
		defaultDataset: defaultDataset,
		layerTTL:       layerTTL,
		logger:         logger,
	}
}

// DefaultDataset - набор данных, который показывается, если id не указан
func (uc *AnnotationUseCase) DefaultDataset() string {
	return uc.defaultDataset
}

// ListDatasets - список доступных наборов данных
func (uc *AnnotationUseCase) ListDatasets(ctx context.Context) (*dto.DatasetListResponse, error) {
	ids, err := uc.routeRepo.ListDatasets(ctx)
	if err != nil {
		uc.logger.Error("Failed to list datasets", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.DatasetListResponse{
		Datasets: ids,
		Default:  uc.defaultDataset,
	}, nil
}

// LoadAnnotation загружает набор данных и прогоняет аннотатор без сборки представления
func (uc *AnnotationUseCase) LoadAnnotation(
	ctx context.Context,
	datasetID string,
	req dto.LayerRequest,
) (*domain.Dataset, *domain.Annotation, error) {
	if datasetID == "" {
		datasetID = uc.defaultDataset
	}
	if err := domain.ValidateDatasetID(datasetID); err != nil {
		return nil, nil, translateDatasetError(err)
	}

	dataset, err := uc.routeRepo.GetDataset(ctx, datasetID)
	if err != nil {
		uc.logger.Warn("Failed to load dataset",
			zap.String("dataset_id", datasetID),
			zap.Error(err))
		return nil, nil, translateDatasetError(err)
	}

	annotation, err := domain.Annotate(dataset, uc.annotateOptions(req))
	if err != nil {
		uc.logger.Warn("Dataset failed validation",
			zap.String("dataset_id", datasetID),
			zap.Error(err))
		return nil, nil, translateDatasetError(err)
	}

	return dataset, annotation, nil
}

// BuildLayer строит слой для сохранённого набора данных, результат кешируется
func (uc *AnnotationUseCase) BuildLayer(
	ctx context.Context,
	datasetID string,
	req dto.LayerRequest,
) (*dto.LayerResponse, error) {
	if datasetID == "" {
		datasetID = uc.defaultDataset
	}
	if err := domain.ValidateDatasetID(datasetID); err != nil {
		return nil, translateDatasetError(err)
	}

	cacheKey := LayerCacheKey(datasetID, req)
	if cached := uc.cachedLayer(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	dataset, annotation, err := uc.LoadAnnotation(ctx, datasetID, req)
	if err != nil {
		return nil, err
	}

	resp, err := uc.present(dataset, annotation, req)
	if err != nil {
		return nil, err
	}

	uc.storeLayer(ctx, cacheKey, resp)

	uc.logger.Debug("Layer built",
		zap.String("dataset_id", datasetID),
		zap.Bool("color_route", req.ColorRoute),
		zap.Bool("show_stations", req.ShowStations),
		zap.Int("zones", resp.Stats.Zones))

	return resp, nil
}

// BuildInlineLayer строит слой для маршрута из тела запроса, без кеширования
func (uc *AnnotationUseCase) BuildInlineLayer(ctx context.Context, req dto.AnnotateRequest) (*dto.LayerResponse, error) {
	for i, p := range req.Route {
		if !utils.ValidateCoordinates(p.Lat, p.Lon) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"point_index": i,
			})
		}
	}

	dataset := req.ToDataset()
	dataset.ID = inlineDatasetID
	layerReq := dto.LayerRequest{ColorRoute: req.ColorRoute, ShowStations: req.ShowStations}

	annotation, err := domain.Annotate(dataset, uc.annotateOptions(layerReq))
	if err != nil {
		return nil, translateDatasetError(err)
	}

	return uc.present(dataset, annotation, layerReq)
}

// InvalidateDataset удаляет из кеша слои набора данных для всех сочетаний переключателей
func (uc *AnnotationUseCase) InvalidateDataset(ctx context.Context, datasetID string) error {
	if uc.cacheRepo == nil {
		return nil
	}

	keys := make([]string, 0, 4)
	for _, color := range []bool{false, true} {
		for _, stations := range []bool{false, true} {
			keys = append(keys, LayerCacheKey(datasetID, dto.LayerRequest{ColorRoute: color, ShowStations: stations}))
		}
	}

	if err := uc.cacheRepo.Delete(ctx, keys...); err != nil {
		uc.logger.Error("Failed to invalidate layer cache",
			zap.String("dataset_id", datasetID),
			zap.Error(err))
		return errors.ErrCacheError
	}

	uc.logger.Info("Layer cache invalidated", zap.String("dataset_id", datasetID))
	return nil
}

// LayerCacheKey - ключ кеша слоя: layer:<id>:<color>:<stations>
func LayerCacheKey(datasetID string, req dto.LayerRequest) string {
	return fmt.Sprintf("%s%s:%t:%t", layerCacheKeyPrefix, datasetID, req.ColorRoute, req.ShowStations)
}

func (uc *AnnotationUseCase) annotateOptions(req dto.LayerRequest) domain.AnnotateOptions {
	opts := domain.AnnotateOptions{
		ColorRoute:   req.ColorRoute,
		ShowStations: req.ShowStations,
	}
	if uc.mediaRepo != nil {
		opts.ZoneImages = uc.mediaRepo.ZoneImages()
	}
	return opts
}

func (uc *AnnotationUseCase) cachedLayer(ctx context.Context, key string) *dto.LayerResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Layer cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var resp dto.LayerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Corrupted layer cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}

	uc.logger.Debug("Layer cache hit", zap.String("key", key))
	resp.Cached = true
	return &resp
}

func (uc *AnnotationUseCase) storeLayer(ctx context.Context, key string, resp *dto.LayerResponse) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal layer", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.layerTTL); err != nil {
		uc.logger.Warn("Failed to cache layer", zap.String("key", key), zap.Error(err))
	}
}

// present переводит результат аннотатора в формат карты
func (uc *AnnotationUseCase) present(
	dataset *domain.Dataset,
	annotation *domain.Annotation,
	req dto.LayerRequest,
) (*dto.LayerResponse, error) {
	route := annotation.Route
	resp := &dto.LayerResponse{
		DatasetID: dataset.ID,
		Center: dto.MapView{
			Lat:  uc.mapCfg.CenterLat,
			Lon:  uc.mapCfg.CenterLon,
			Zoom: uc.mapCfg.Zoom,
		},
		Route:    route,
		Edges:    make([]dto.EdgeLayer, 0, len(annotation.Edges)),
		Zones:    make([]dto.ZoneLayer, 0, len(annotation.Zones)),
		Stations: make([]dto.StationLayer, 0, len(annotation.Stations)),
		Legend:   legend,
		Stats: dto.LayerStats{
			Points:       len(route),
			Edges:        len(dataset.Vibrations),
			RouteLengthM: routeLength(route, 0, len(route)-1),
		},
	}

	if len(route) > 0 {
		resp.Start = &dto.Marker{Label: uc.mapCfg.StartLabel, Point: route[0], Color: startMarkerColor}
		resp.End = &dto.Marker{Label: uc.mapCfg.EndLabel, Point: route[len(route)-1], Color: endMarkerColor}
	}

	if !req.ColorRoute {
		resp.Polyline = &dto.Polyline{Color: plainRouteColor, Weight: lineWeight, Opacity: lineOpacity}
	}

	for _, e := range annotation.Edges {
		resp.Edges = append(resp.Edges, dto.EdgeLayer{
			Index:     e.Index,
			From:      e.From,
			To:        e.To,
			Vibration: e.Vibration,
			Band:      e.Band,
			Color:     e.Band.Color(),
			Weight:    lineWeight,
			Opacity:   lineOpacity,
		})
	}

	for _, z := range annotation.Zones {
		length := routeLength(route, z.Start, z.End)
		peak := maxVibration(dataset.Vibrations, z.Segment)
		popup, err := renderZonePopup(length, peak, z.Image)
		if err != nil {
			uc.logger.Error("Failed to render zone popup", zap.Error(err))
			return nil, errors.ErrInternalServer
		}

		resp.Zones = append(resp.Zones, dto.ZoneLayer{
			StartIndex:   z.Start,
			EndIndex:     z.End,
			Box:          z.Bounds,
			Bounds:       z.Bounds.Corners(),
			Image:        z.Image,
			PopupHTML:    popup,
			LengthMeters: length,
			MaxVibration: peak,
		})
		resp.Stats.HighVibrationM += length
	}

	for _, s := range annotation.Stations {
		var video string
		if uc.mediaRepo != nil {
			video, _ = uc.mediaRepo.StationVideo(s.Name)
		}
		popup, err := renderStationPopup(s, video)
		if err != nil {
			uc.logger.Error("Failed to render station popup", zap.Error(err))
			return nil, errors.ErrInternalServer
		}

		resp.Stations = append(resp.Stations, dto.StationLayer{
			Name:        s.Name,
			Lat:         s.Lat,
			Lon:         s.Lon,
			Activity:    s.Activity,
			Radius:      s.Radius,
			FillColor:   stationFillColor,
			FillOpacity: stationFillOpacity,
			Tooltip:     stationTooltip(s),
			PopupHTML:   popup,
			Video:       video,
		})
	}

	resp.Stats.Zones = len(resp.Zones)
	resp.Stats.Stations = len(resp.Stations)

	return resp, nil
}

// routeLength - длина маршрута по точкам [from, to] в метрах
func routeLength(route []domain.Point, from, to int) float64 {
	if from < 0 || to >= len(route) || to <= from {
		return 0
	}
	lats := make([]float64, 0, to-from+1)
	lons := make([]float64, 0, to-from+1)
	for _, p := range route[from : to+1] {
		lats = append(lats, p.Lat)
		lons = append(lons, p.Lon)
	}
	return utils.PathLength(lats, lons)
}

func maxVibration(vibrations []float64, seg domain.Segment) float64 {
	var peak float64
	for i := seg.Start; i < seg.End && i < len(vibrations); i++ {
		if vibrations[i] > peak {
			peak = vibrations[i]
		}
	}
	return peak
}
