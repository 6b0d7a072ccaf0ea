package domain

import (
	"context"
)

// GenerationOptions carries the per-call sampling configuration.
type GenerationOptions struct {
	Temperature     float64
	MaxOutputTokens int
}

// TextGenerator defines the port to a hosted generative model.
type TextGenerator interface {
	// Generate sends a single prompt and returns the raw text reply.
	// Implementations make exactly one attempt.
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}
