package ai

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"teamhealth/internal/config"
	"teamhealth/internal/domain"
)

// ErrEmptyResponse - scoring-сервис вернул ответ без вариантов
var ErrEmptyResponse = errors.New("scoring service returned empty response")

// rawSchema передаёт JSON Schema из запроса в API без пересериализации
type rawSchema json.RawMessage

func (s rawSchema) MarshalJSON() ([]byte, error) {
	return json.RawMessage(s).MarshalJSON()
}

// Client - клиент LLM-сервиса оценивания, реализует domain.ScoringClient.
// Форма ответа навязывается через structured output: модель обязана вернуть
// JSON строго по переданной схеме.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

var _ domain.ScoringClient = (*Client)(nil)

// NewClient создаёт клиент scoring-сервиса по конфигурации;
// BaseURL позволяет подключить совместимый self-hosted сервис
func NewClient(envConf *config.Config) *Client {
	cfg := openai.DefaultConfig(envConf.Scoring.APIKey)
	if envConf.Scoring.BaseURL != "" {
		cfg.BaseURL = envConf.Scoring.BaseURL
	}

	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		model:   envConf.Scoring.Model,
		timeout: time.Duration(envConf.Scoring.TimeoutSeconds) * time.Second,
	}
}

// GenerateStructured выполняет один запрос к модели и возвращает сырой JSON ответа
func (c *Client) GenerateStructured(ctx context.Context, req *domain.StructuredOutputRequest) (json.RawMessage, error) {
	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Name,
				Schema: rawSchema(req.Schema),
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return json.RawMessage(resp.Choices[0].Message.Content), nil
}
