package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"leetcode-assistant/models"
	"leetcode-assistant/services"
	"leetcode-assistant/services/llm"
)

type fakeClient struct {
	completion string
	err        error

	gotSeedTurns []models.Turn
	gotPrompt    string
}

func (f *fakeClient) Generate(ctx context.Context, seedTurns []models.Turn, prompt string) (string, error) {
	f.gotSeedTurns = seedTurns
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

type blockingClient struct{}

func (b *blockingClient) Generate(ctx context.Context, seedTurns []models.Turn, prompt string) (string, error) {
	<-ctx.Done()
	return "", &llm.UpstreamError{Detail: "model request failed", Err: ctx.Err()}
}

func TestExchangeSuccess(t *testing.T) {
	client := &fakeClient{completion: `Use two pointers.\nSimple.`}
	service := NewService(services.NewProblemService(), client, 0)

	result, err := service.Exchange(context.Background(), "How do I solve this?", "https://leetcode.com/problems/two-sum")
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}

	if !result.Succeeded {
		t.Error("expected a succeeded result")
	}
	if result.RawText != `Use two pointers.\nSimple.` {
		t.Errorf("raw text = %q, expected the completion verbatim", result.RawText)
	}
	if result.DisplayText != "Use two pointers.\nSimple." {
		t.Errorf("display text = %q, expected normalized completion", result.DisplayText)
	}

	if len(client.gotSeedTurns) != 2 {
		t.Fatalf("capability received %d seed turns, expected 2", len(client.gotSeedTurns))
	}
	if !strings.Contains(client.gotPrompt, "Two Sum") {
		t.Errorf("prompt not enriched with the problem title: %q", client.gotPrompt)
	}
	if !strings.Contains(client.gotPrompt, "How do I solve this?") {
		t.Errorf("prompt lost the verbatim question: %q", client.gotPrompt)
	}
}

func TestExchangeWithoutProblemURL(t *testing.T) {
	client := &fakeClient{completion: "A hash map stores key-value pairs."}
	service := NewService(services.NewProblemService(), client, 0)

	_, err := service.Exchange(context.Background(), "What is a hash map?", "")
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}

	if client.gotPrompt != "What is a hash map?" {
		t.Errorf("prompt = %q, expected the question unchanged", client.gotPrompt)
	}
}

func TestExchangeMalformedURLDegradesToNoContext(t *testing.T) {
	client := &fakeClient{completion: "ok"}
	service := NewService(services.NewProblemService(), client, 0)

	_, err := service.Exchange(context.Background(), "help", "https://example.com/problems/what")
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}
	if client.gotPrompt != "help" {
		t.Errorf("prompt = %q, expected no enrichment for a non-catalog URL", client.gotPrompt)
	}
}

func TestExchangeUpstreamFailure(t *testing.T) {
	client := &fakeClient{err: &llm.UpstreamError{Detail: "model request failed", Err: errors.New("quota exceeded")}}
	service := NewService(services.NewProblemService(), client, 0)

	result, err := service.Exchange(context.Background(), "help", "")
	if result != nil {
		t.Errorf("expected nil result on failure, got %+v", result)
	}

	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected an UpstreamError, got %T: %v", err, err)
	}
	if !strings.Contains(upstream.Error(), "quota exceeded") {
		t.Errorf("error lost the upstream detail: %v", upstream)
	}
}

func TestExchangeTimeout(t *testing.T) {
	service := NewService(services.NewProblemService(), &blockingClient{}, 10*time.Millisecond)

	_, err := service.Exchange(context.Background(), "help", "")

	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected an UpstreamError on timeout, got %T: %v", err, err)
	}
	if upstream.Detail != "model request timed out" {
		t.Errorf("detail = %q, expected the timeout detail", upstream.Detail)
	}
}
