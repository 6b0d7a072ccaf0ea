package llm

import (
	"context"
	"fmt"
	"strings"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// contentGenerator is the slice of *genai.GenerativeModel used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements domain.TextGenerator with the Gemini API.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
	// newModel builds a model configured for one call. Replaced in tests.
	newModel func(opts domain.GenerationOptions) contentGenerator
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g := &GeminiGenerator{client: client, modelName: modelName}
	g.newModel = func(opts domain.GenerationOptions) contentGenerator {
		model := client.GenerativeModel(modelName)
		model.SetTemperature(float32(opts.Temperature))
		if opts.MaxOutputTokens > 0 {
			model.SetMaxOutputTokens(int32(opts.MaxOutputTokens))
		}
		return model
	}
	logger.Get().Info("Initialized Gemini generator", zap.String("model", modelName))
	return g, nil
}

// Generate implements domain.TextGenerator
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	resp, err := g.newModel(opts).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Get().Error("Gemini request failed", zap.String("model", g.modelName), zap.Error(err))
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)
