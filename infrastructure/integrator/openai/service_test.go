package openai

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai/mocks"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai/openaiclient"
	"github.com/backtrue/fbaudit-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			Model:       "gpt-4o-mini",
			MaxTokens:   1000,
			Temperature: 0.7,
		},
	}
}

func TestOpenAIIntegrator_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	tests := []struct {
		name     string
		request  *CompletionRequest
		setup    func()
		validate func(t *testing.T, result string, err error)
	}{
		{
			name: "Parâmetros zerados caem nos valores da configuração",
			request: &CompletionRequest{
				System: "Você é um consultor.",
				Prompt: "Como melhorar o ROAS?",
			},
			setup: func() {
				mockClient.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params openaiclient.ChatCompletionParams) (*openaiclient.ChatCompletionResponse, error) {
						assert.Equal(t, "gpt-4o-mini", params.Model)
						assert.Equal(t, 1000, params.MaxTokens)
						assert.Equal(t, 0.7, params.Temperature)

						assert.Len(t, params.Messages, 2)
						assert.Equal(t, "system", params.Messages[0].Role)
						assert.Equal(t, "user", params.Messages[1].Role)

						return &openaiclient.ChatCompletionResponse{
							Choices: []openaiclient.ChatCompletionChoice{
								{Message: openaiclient.ChatMessage{Role: "assistant", Content: "<p>Concentre o orçamento.</p>"}},
							},
						}, nil
					})
			},
			validate: func(t *testing.T, result string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "<p>Concentre o orçamento.</p>", result)
			},
		},
		{
			name: "Parâmetros explícitos prevalecem",
			request: &CompletionRequest{
				Prompt:      "Resumo rápido.",
				MaxTokens:   300,
				Temperature: 0.2,
			},
			setup: func() {
				mockClient.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params openaiclient.ChatCompletionParams) (*openaiclient.ChatCompletionResponse, error) {
						assert.Equal(t, 300, params.MaxTokens)
						assert.Equal(t, 0.2, params.Temperature)

						// Sem mensagem de sistema quando System está vazio
						assert.Len(t, params.Messages, 1)
						assert.Equal(t, "user", params.Messages[0].Role)

						return &openaiclient.ChatCompletionResponse{
							Choices: []openaiclient.ChatCompletionChoice{
								{Message: openaiclient.ChatMessage{Role: "assistant", Content: "ok"}},
							},
						}, nil
					})
			},
			validate: func(t *testing.T, result string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ok", result)
			},
		},
		{
			name:    "Resposta sem escolhas vira erro",
			request: &CompletionRequest{Prompt: "Oi"},
			setup: func() {
				mockClient.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(&openaiclient.ChatCompletionResponse{}, nil)
			},
			validate: func(t *testing.T, result string, err error) {
				assert.ErrorIs(t, err, ErrEmptyCompletion)
				assert.Empty(t, result)
			},
		},
		{
			name:    "Erro do cliente é propagado",
			request: &CompletionRequest{Prompt: "Oi"},
			setup: func() {
				mockClient.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result string, err error) {
				assert.Error(t, err)
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := integrator.Complete(context.Background(), tt.request)
			tt.validate(t, result, err)
		})
	}
}
