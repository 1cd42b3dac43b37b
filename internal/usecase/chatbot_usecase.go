package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/pkg/errors"
	"github.com/visual-twin/internal/usecase/dto"
)

const (
	fallbackReply    = "Sorry, I don't understand that."
	unavailableReply = "The advanced chatbot is currently unavailable. Please use predefined responses."
)

var cannedReplies = map[string]string{
	"Hi":           "Hello!",
	"How are you?": "I am fine, thanks! How are you?",
}

// ChatbotUseCase - простой бот на заготовленных ответах и продвинутый бот на модели генерации текста
type ChatbotUseCase struct {
	generator   repository.TextGenerator
	cacheRepo   repository.CacheRepository
	historyRepo repository.ChatHistoryRepository
	cacheTTL    time.Duration
	historyTTL  time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewChatbotUseCase создает ChatbotUseCase. generator == nil - продвинутый бот недоступен,
// cacheRepo и historyRepo могут быть nil.
func NewChatbotUseCase(
	generator repository.TextGenerator,
	cacheRepo repository.CacheRepository,
	historyRepo repository.ChatHistoryRepository,
	cacheTTL time.Duration,
	historyTTL time.Duration,
	logger *zap.Logger,
) *ChatbotUseCase {
	return &ChatbotUseCase{
		generator:   generator,
		cacheRepo:   cacheRepo,
		historyRepo: historyRepo,
		cacheTTL:    cacheTTL,
		historyTTL:  historyTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// AdvancedAvailable - настроена ли модель генерации текста
func (uc *ChatbotUseCase) AdvancedAvailable() bool {
	return uc.generator != nil
}

// SimpleReply - ответ из таблицы, для неизвестных сообщений fallbackReply
func SimpleReply(text string) string {
	if reply, ok := cannedReplies[text]; ok {
		return reply
	}
	return fallbackReply
}

// SelectBot - бот по запросу; если не указан, продвинутый при наличии модели
func (uc *ChatbotUseCase) SelectBot(requested string) domain.Bot {
	switch domain.Bot(requested) {
	case domain.BotSimple, domain.BotAdvanced:
		return domain.Bot(requested)
	}
	if uc.AdvancedAvailable() {
		return domain.BotAdvanced
	}
	return domain.BotSimple
}

// Reply отвечает на сообщение и дописывает обе реплики в историю сессии
func (uc *ChatbotUseCase) Reply(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID, err := uc.sessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	bot := uc.SelectBot(req.Bot)
	reply, cached, err := uc.respond(ctx, bot, req.Message)
	if err != nil {
		return nil, err
	}

	resp := &dto.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		Bot:       bot,
		Cached:    cached,
	}
	if bot == domain.BotAdvanced && uc.generator != nil {
		resp.Model = uc.generator.Model()
	}

	at := uc.now().UTC()
	turns := []domain.ChatTurn{
		{Role: domain.RoleUser, Message: req.Message, At: at},
		{Role: domain.RoleChatbot, Message: reply, Bot: bot, At: at},
	}
	resp.History = uc.appendHistory(ctx, sessionID, turns)

	uc.logger.Info("Chat reply",
		zap.String("session_id", sessionID.String()),
		zap.String("bot", string(bot)),
		zap.Bool("cached", cached),
		zap.Int("history", len(resp.History)))

	return resp, nil
}

// History возвращает историю сессии
func (uc *ChatbotUseCase) History(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, errors.ErrInvalidSessionID
	}

	resp := &dto.ChatHistoryResponse{
		SessionID: id,
		Turns:     []domain.ChatTurn{},
	}
	if uc.historyRepo == nil {
		return resp, nil
	}

	turns, err := uc.historyRepo.GetHistory(ctx, id.String())
	if err != nil {
		uc.logger.Error("Failed to read chat history",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, errors.ErrCacheError
	}
	resp.Turns = turns

	return resp, nil
}

func (uc *ChatbotUseCase) sessionID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidSessionID
	}
	return id, nil
}

// respond возвращает ответ бота и признак попадания в кеш
func (uc *ChatbotUseCase) respond(ctx context.Context, bot domain.Bot, text string) (string, bool, error) {
	if bot == domain.BotSimple {
		return SimpleReply(text), false, nil
	}
	if uc.generator == nil {
		return unavailableReply, false, nil
	}

	key := ChatCacheKey(bot, uc.generator.Model(), text)
	if uc.cacheRepo != nil {
		data, err := uc.cacheRepo.Get(ctx, key)
		if err != nil {
			uc.logger.Warn("Chat cache read failed", zap.String("key", key), zap.Error(err))
		} else if data != nil {
			return string(data), true, nil
		}
	}

	reply, err := uc.generator.Generate(ctx, text)
	if err != nil {
		uc.logger.Error("Text generation failed",
			zap.String("model", uc.generator.Model()),
			zap.Error(err))
		return "", false, errors.ErrTextGeneration
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.Set(ctx, key, []byte(reply), uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache chat reply", zap.String("key", key), zap.Error(err))
		}
	}

	return reply, false, nil
}

// appendHistory сохраняет реплики; при недоступном хранилище возвращает только текущий обмен
func (uc *ChatbotUseCase) appendHistory(ctx context.Context, sessionID uuid.UUID, turns []domain.ChatTurn) []domain.ChatTurn {
	if uc.historyRepo == nil {
		return turns
	}

	id := sessionID.String()
	if err := uc.historyRepo.AppendTurns(ctx, id, turns, uc.historyTTL); err != nil {
		uc.logger.Warn("Failed to store chat history", zap.String("session_id", id), zap.Error(err))
		return turns
	}

	history, err := uc.historyRepo.GetHistory(ctx, id)
	if err != nil {
		uc.logger.Warn("Failed to read chat history", zap.String("session_id", id), zap.Error(err))
		return turns
	}
	return history
}

// ChatCacheKey - chat:reply:<xxhash(bot, model, text)>
func ChatCacheKey(bot domain.Bot, model, text string) string {
	d := xxhash.New()
	_, _ = d.WriteString(string(bot))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(model)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(text)
	return "chat:reply:" + strconv.FormatUint(d.Sum64(), 16)
}
