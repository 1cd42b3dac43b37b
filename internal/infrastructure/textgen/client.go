package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/domain/repository"
	"go.uber.org/zap"
)

// ErrEmptyGeneration - модель вернула пустой ответ
var ErrEmptyGeneration = errors.New("text generation returned no text")

type client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	token      string
	logger     *zap.Logger
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// NewClient создает клиент inference API в формате Hugging Face
func NewClient(cfg *config.TextGenConfig, logger *zap.Logger) repository.TextGenerator {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		model:   cfg.Model,
		token:   cfg.Token,
		logger:  logger,
	}
}

func (c *client) Model() string {
	return c.model
}

// Generate отправляет {"inputs": text} на /models/{model} и возвращает generated_text
func (c *client) Generate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(generateRequest{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)

	c.logger.Debug("Calling text generation API",
		zap.String("url", url),
		zap.Int("input_length", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Text generation API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))
		return "", fmt.Errorf("text generation API error: status %d, body: %s", resp.StatusCode, string(raw))
	}

	out, err := decodeGeneration(raw)
	if err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return "", err
	}

	c.logger.Debug("Text generation API call successful",
		zap.String("model", c.model),
		zap.Int("output_length", len(out)))

	return out, nil
}

// decodeGeneration принимает и список [{generated_text}], и одиночный объект
func decodeGeneration(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)

	var items []generation
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single generation
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		items = append(items, single)
	} else if err := json.Unmarshal(trimmed, &items); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(items) == 0 || strings.TrimSpace(items[0].GeneratedText) == "" {
		return "", ErrEmptyGeneration
	}
	return items[0].GeneratedText, nil
}
