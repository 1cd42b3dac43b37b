package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visual-twin/internal/pkg/utils"
	"github.com/visual-twin/internal/pkg/validator"
	"github.com/visual-twin/internal/usecase"
	"github.com/visual-twin/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик слоя карты: окраска маршрута, зоны вибрации, станции
type RouteHandler struct {
	annotationUC *usecase.AnnotationUseCase
	logger       *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(annotationUC *usecase.AnnotationUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		annotationUC: annotationUC,
		logger:       logger,
	}
}

// ListDatasets godoc
// @Summary Список наборов данных
// @Description Возвращает идентификаторы доступных наборов данных маршрута и набор по умолчанию
// @Tags Route
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DatasetListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/datasets [get]
func (h *RouteHandler) ListDatasets(c *fiber.Ctx) error {
	result, err := h.annotationUC.ListDatasets(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Datasets),
	})
}

// GetLayer godoc
// @Summary Слой карты для набора данных
// @Description Маркеры начала и конца, маршрут (окрашенный по вибрации при color=true), зоны высокой вибрации и станции (при stations=true)
// @Tags Route
// @Produce json
// @Param id path string true "ID набора данных, default - набор по умолчанию"
// @Param color query bool false "Окрасить маршрут по уровню вибрации" default(false)
// @Param stations query bool false "Показать станции" default(false)
// @Success 200 {object} utils.SuccessResponse{data=dto.LayerResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/datasets/{id}/layer [get]
func (h *RouteHandler) GetLayer(c *fiber.Ctx) error {
	req := layerRequest(c)

	result, err := h.annotationUC.BuildLayer(c.Context(), h.datasetID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Cached: result.Cached,
	})
}

// GetLayerGeoJSON godoc
// @Summary Слой карты в GeoJSON
// @Description Тот же слой, что и /layer, в виде FeatureCollection (стили в properties)
// @Tags Route
// @Produce application/geo+json
// @Param id path string true "ID набора данных, default - набор по умолчанию"
// @Param color query bool false "Окрасить маршрут по уровню вибрации" default(false)
// @Param stations query bool false "Показать станции" default(false)
// @Param simplify query number false "Допуск упрощения линии маршрута в градусах (0..0.1)" default(0)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/datasets/{id}/layer.geojson [get]
func (h *RouteHandler) GetLayerGeoJSON(c *fiber.Ctx) error {
	req := dto.GeoJSONRequest{
		LayerRequest: layerRequest(c),
		Simplify:     c.QueryFloat("simplify", 0),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.annotationUC.BuildGeoJSON(c.Context(), h.datasetID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(fc, "application/geo+json")
}

// Annotate godoc
// @Summary Аннотация маршрута из тела запроса
// @Description Строит слой карты для переданного маршрута. vibrations[i] относится к ребру route[i] -> route[i+1]. Результат не кешируется.
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.AnnotateRequest true "Маршрут, вибрации и станции"
// @Success 200 {object} utils.SuccessResponse{data=dto.LayerResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/annotate [post]
func (h *RouteHandler) Annotate(c *fiber.Ctx) error {
	var req dto.AnnotateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.annotationUC.BuildInlineLayer(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Debug("Inline route annotated",
		zap.Int("points", len(req.Route)),
		zap.Int("zones", result.Stats.Zones))

	return utils.SendSuccess(c, result, nil)
}

// datasetID - "default" в пути означает набор по умолчанию
func (h *RouteHandler) datasetID(c *fiber.Ctx) string {
	id := c.Params("id")
	if id == "default" {
		return h.annotationUC.DefaultDataset()
	}
	return id
}

func layerRequest(c *fiber.Ctx) dto.LayerRequest {
	return dto.LayerRequest{
		ColorRoute:   c.QueryBool("color", false),
		ShowStations: c.QueryBool("stations", false),
	}
}
