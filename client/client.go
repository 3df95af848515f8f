// Package client talks to the assistant backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leetcode-assistant/models"
	"leetcode-assistant/services/llm"
)

const chatPath = "/api/chat"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Send posts one chat exchange. Backend failures and transport errors
// alike are reported as UpstreamError so the conversation layer can
// absorb them into an error turn.
func (c *Client) Send(ctx context.Context, userMessage, problemURL string) (*models.ExchangeResult, error) {
	payload, err := json.Marshal(models.ChatRequest{
		UserMessage: userMessage,
		LeetcodeURL: problemURL,
		Context:     "leetcode",
	})
	if err != nil {
		return nil, &llm.UpstreamError{Detail: "failed to encode chat request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &llm.UpstreamError{Detail: "failed to build chat request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &llm.UpstreamError{Detail: "failed to reach the backend", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp models.ChatErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			detail := errResp.Error
			if errResp.Details != "" {
				detail = fmt.Sprintf("%s (%s)", errResp.Error, errResp.Details)
			}
			return nil, &llm.UpstreamError{Detail: detail}
		}
		return nil, &llm.UpstreamError{Detail: fmt.Sprintf("backend returned status %d", resp.StatusCode)}
	}

	var chatResp models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, &llm.UpstreamError{Detail: "failed to decode backend response", Err: err}
	}

	return &models.ExchangeResult{
		DisplayText: chatResp.Response,
		RawText:     chatResp.AIResponse,
		Succeeded:   true,
	}, nil
}
