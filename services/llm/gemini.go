package llm

import (
	"context"
	"fmt"
	"log"

	"leetcode-assistant/models"

	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient implements the model capability over the Gemini API.
type GeminiClient struct {
	llm *googleai.GoogleAI
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{llm: llm}, nil
}

// Generate sends the seed turns and the prompt as one role-tagged
// sequence and returns the completion text verbatim. No retries.
func (c *GeminiClient) Generate(ctx context.Context, seedTurns []models.Turn, prompt string) (string, error) {
	content := lo.Map(seedTurns, func(turn models.Turn, _ int) llms.MessageContent {
		return llms.TextParts(geminiRole(turn.Speaker), turn.Text)
	})
	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	log.Printf("[INFO] Calling Gemini with %d seed turns", len(seedTurns))
	resp, err := c.llm.GenerateContent(ctx, content)
	if err != nil {
		log.Printf("[ERROR] Gemini request failed: %v", err)
		return "", &UpstreamError{Detail: "model request failed", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Detail: "model returned no completion"}
	}

	return resp.Choices[0].Content, nil
}

// geminiRole maps turn speakers to the chat roles the API understands.
// The instruction block travels as a user turn: the seeded chat has no
// separate system role.
func geminiRole(speaker models.Speaker) llms.ChatMessageType {
	if speaker == models.SpeakerAssistant {
		return llms.ChatMessageTypeAI
	}
	return llms.ChatMessageTypeHuman
}
