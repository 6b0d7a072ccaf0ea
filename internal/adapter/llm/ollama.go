package llm

import (
	"context"
	"fmt"
	"net/http"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// LangchainGenerator implements domain.TextGenerator on top of any langchaingo model.
type LangchainGenerator struct {
	model llms.Model
	name  string
}

// NewLangchainGenerator wraps an already constructed langchaingo model.
func NewLangchainGenerator(model llms.Model, name string) *LangchainGenerator {
	return &LangchainGenerator{model: model, name: name}
}

// NewOllamaGenerator connects to an Ollama server through langchaingo.
func NewOllamaGenerator(serverURL, modelName string, httpClient *http.Client) (*LangchainGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	opts := []ollama.Option{ollama.WithServerURL(serverURL), ollama.WithModel(modelName)}
	if httpClient != nil {
		opts = append(opts, ollama.WithHTTPClient(httpClient))
	}
	model, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	logger.Get().Info("Initialized Ollama generator", zap.String("server_url", serverURL), zap.String("model", modelName))
	return NewLangchainGenerator(model, modelName), nil
}

// Generate implements domain.TextGenerator
func (g *LangchainGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	callOpts := []llms.CallOption{llms.WithTemperature(opts.Temperature)}
	if opts.MaxOutputTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxOutputTokens))
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, callOpts...)
	if err != nil {
		logger.Get().Error("Failed to get response from LLM", zap.String("model", g.name), zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

var _ domain.TextGenerator = (*LangchainGenerator)(nil)
