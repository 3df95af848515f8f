package chat

import (
	"context"
	"errors"
	"log"
	"time"

	"leetcode-assistant/models"
	"leetcode-assistant/services"
	"leetcode-assistant/services/llm"
)

// Service runs one full exchange: resolve the problem reference, compose
// the prompt around the user's question, invoke the model capability,
// and normalize the completion for display.
type Service struct {
	problems *services.ProblemService
	client   llm.Client
	timeout  time.Duration
}

func NewService(problems *services.ProblemService, client llm.Client, timeout time.Duration) *Service {
	return &Service{
		problems: problems,
		client:   client,
		timeout:  timeout,
	}
}

// Exchange performs a single request/response cycle with the model
// capability. Every call seeds a fresh session with only the two fixed
// turns; the visible conversation history is client-side state and is
// deliberately not forwarded. Reference extraction failures degrade to
// an unenriched prompt rather than failing the exchange.
func (s *Service) Exchange(ctx context.Context, userMessage, problemURL string) (*models.ExchangeResult, error) {
	log.Printf("[INFO] Starting exchange (problem URL present: %v)", problemURL != "")

	ref := s.problems.Extract(problemURL)
	if ref != nil {
		log.Printf("[INFO] Exchange enriched with problem %q", ref.Identifier)
	}

	composed := Compose(userMessage, ref)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.client.Generate(ctx, composed.SeedTurns, composed.FinalPrompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = &llm.UpstreamError{Detail: "model request timed out", Err: err}
		}
		log.Printf("[ERROR] Exchange failed: %v", err)
		return nil, err
	}

	log.Printf("[INFO] Exchange completed successfully")
	return &models.ExchangeResult{
		DisplayText: Normalize(raw),
		RawText:     raw,
		Succeeded:   true,
	}, nil
}
