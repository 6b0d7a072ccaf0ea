package llm

import (
	"context"
	"fmt"
	"net/http"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
)

// NewTextGenerator builds the generator selected by llm.provider.
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig) (domain.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderOllama:
		g, err := NewOllamaGenerator(cfg.ServerURL, cfg.Model, &http.Client{Timeout: cfg.RequestTimeout})
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderOpenAI:
		g, err := NewOpenAIGenerator(cfg.APIKey, cfg.Model, "")
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
