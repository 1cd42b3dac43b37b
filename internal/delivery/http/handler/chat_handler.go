package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visual-twin/internal/pkg/utils"
	"github.com/visual-twin/internal/pkg/validator"
	"github.com/visual-twin/internal/usecase"
	"github.com/visual-twin/internal/usecase/dto"
	"go.uber.org/zap"
)

// ChatHandler - обработчик чат-бота
type ChatHandler struct {
	chatbotUC *usecase.ChatbotUseCase
	logger    *zap.Logger
}

// NewChatHandler - создание нового ChatHandler
func NewChatHandler(chatbotUC *usecase.ChatbotUseCase, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatbotUC: chatbotUC,
		logger:    logger,
	}
}

// Chat godoc
// @Summary Сообщение чат-боту
// @Description Простой бот отвечает из таблицы заготовок, продвинутый - через модель генерации текста. Без session_id открывается новая сессия.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Сообщение"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChatResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.chatbotUC.Reply(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Cached: result.Cached,
	})
}

// History godoc
// @Summary История сессии чата
// @Tags Chat
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChatHistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/chat/{session_id}/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	result, err := h.chatbotUC.History(c.Context(), c.Params("session_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Turns),
	})
}
