package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visual-twin/internal/pkg/utils"
	"github.com/visual-twin/internal/pkg/validator"
	"github.com/visual-twin/internal/usecase"
	"github.com/visual-twin/internal/usecase/dto"
	"go.uber.org/zap"
)

// ImportHandler - постановка импорта CSV в очередь воркера
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// Import godoc
// @Summary Импорт CSV в SQL хранилище
// @Description Публикует событие в stream:route:import. Файл ищется в DATA_DIR, итог импорта приходит в stream:route:imported.
// @Tags Datasets
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Файл и идентификатор набора"
// @Success 202 {object} utils.SuccessResponse{data=dto.ImportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/datasets/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.importUC.Enqueue(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendAccepted(c, result)
}
