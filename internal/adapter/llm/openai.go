package llm

import (
	"context"
	"fmt"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIGenerator implements domain.TextGenerator with the OpenAI chat API.
type OpenAIGenerator struct {
	client    *openai.Client
	modelName string
}

// NewOpenAIGenerator creates an OpenAI-backed generator. baseURL may be empty
// to use the public endpoint.
func NewOpenAIGenerator(apiKey, modelName, baseURL string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client:    openai.NewClientWithConfig(clientCfg),
		modelName: modelName,
	}, nil
}

// Generate implements domain.TextGenerator
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxOutputTokens,
	})
	if err != nil {
		logger.Get().Error("OpenAI request failed", zap.String("model", g.modelName), zap.Error(err))
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ domain.TextGenerator = (*OpenAIGenerator)(nil)
