package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"go.uber.org/zap"
)

// maxHistoryTurns - сколько последних реплик хранится на сессию
const maxHistoryTurns = 200

type chatHistoryRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewChatHistoryRepository хранит историю чата в Redis list chat:history:<session>
func NewChatHistoryRepository(redis *Redis) repository.ChatHistoryRepository {
	return &chatHistoryRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func historyKey(sessionID string) string {
	return "chat:history:" + sessionID
}

func (r *chatHistoryRepository) AppendTurns(ctx context.Context, sessionID string, turns []domain.ChatTurn, ttl time.Duration) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("marshal chat turn: %w", err)
		}
		values = append(values, data)
	}

	key := historyKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -maxHistoryTurns, -1)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to append chat history",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return fmt.Errorf("append chat history: %w", err)
	}

	return nil
}

func (r *chatHistoryRepository) GetHistory(ctx context.Context, sessionID string) ([]domain.ChatTurn, error) {
	raw, err := r.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		r.logger.Error("Failed to read chat history",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, fmt.Errorf("read chat history: %w", err)
	}

	turns := make([]domain.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn domain.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			r.logger.Warn("Skipping corrupted chat turn",
				zap.String("session_id", sessionID),
				zap.Error(err))
			continue
		}
		turns = append(turns, turn)
	}

	return turns, nil
}
