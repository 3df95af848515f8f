package llm

import (
	"context"
	"log"

	"leetcode-assistant/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements the model capability over the Anthropic API.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	selected := anthropic.ModelClaude4Sonnet20250514
	if model != "" {
		selected = anthropic.Model(model)
	}

	return &AnthropicClient{
		client: &client,
		model:  selected,
	}
}

func (c *AnthropicClient) Generate(ctx context.Context, seedTurns []models.Turn, prompt string) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(seedTurns)+1)
	for _, turn := range seedTurns {
		if turn.Speaker == models.SpeakerAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Text)))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Text)))
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	log.Printf("[INFO] Calling Anthropic with %d seed turns", len(seedTurns))
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 4096,
		Messages:  messages,
	})
	if err != nil {
		log.Printf("[ERROR] Anthropic request failed: %v", err)
		return "", &UpstreamError{Detail: "model request failed", Err: err}
	}

	text := ""
	for _, block := range resp.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += tb.Text
		}
	}

	if text == "" {
		return "", &UpstreamError{Detail: "model returned no completion"}
	}

	return text, nil
}
