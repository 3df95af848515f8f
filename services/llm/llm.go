package llm

import (
	"context"
	"fmt"

	"leetcode-assistant/models"
)

// Client is the model capability: it accepts the fixed seed turns plus
// one outgoing prompt and returns a single text completion. Providers
// wrap every failure in an UpstreamError; callers never see raw SDK
// errors.
type Client interface {
	Generate(ctx context.Context, seedTurns []models.Turn, prompt string) (string, error)
}

// UpstreamError signals that the model capability rejected, errored, or
// returned nothing. Detail carries the human-readable explanation kept
// for diagnostic display.
type UpstreamError struct {
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// New builds the configured provider. Gemini is the default; Anthropic
// is selectable for deployments without a Gemini credential.
func New(ctx context.Context, provider, apiKey, model string) (Client, error) {
	switch provider {
	case "", "gemini":
		return NewGeminiClient(ctx, apiKey, model)
	case "anthropic":
		return NewAnthropicClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
