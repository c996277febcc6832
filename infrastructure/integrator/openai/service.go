package openai

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai/openaiclient"
	"github.com/backtrue/fbaudit-api/internal/config"
)

// ErrEmptyCompletion indica que o modelo respondeu sem conteúdo.
var ErrEmptyCompletion = errors.New("a resposta do modelo veio vazia")

// CompletionRequest é um pedido de texto ao modelo de linguagem.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type OpenAIIntegrator struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) *OpenAIIntegrator {
	return &OpenAIIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Complete envia o prompt ao modelo configurado e retorna o texto gerado.
// MaxTokens e Temperature zerados caem nos valores da configuração.
func (s *OpenAIIntegrator) Complete(ctx context.Context, request *CompletionRequest) (string, error) {
	maxTokens := request.MaxTokens
	if maxTokens == 0 {
		maxTokens = s.cfg.OpenAI.MaxTokens
	}

	temperature := request.Temperature
	if temperature == 0 {
		temperature = s.cfg.OpenAI.Temperature
	}

	messages := make([]openaiclient.ChatMessage, 0, 2)
	if request.System != "" {
		messages = append(messages, openaiclient.ChatMessage{Role: "system", Content: request.System})
	}
	messages = append(messages, openaiclient.ChatMessage{Role: "user", Content: request.Prompt})

	resp, err := s.Client.CreateChatCompletion(ctx, openaiclient.ChatCompletionParams{
		Model:       s.cfg.OpenAI.Model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		logrus.WithError(err).Error("audit: failed to call chat completion API")
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
