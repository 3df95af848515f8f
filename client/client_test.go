package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leetcode-assistant/models"
	"leetcode-assistant/services/llm"
)

func TestSendSuccess(t *testing.T) {
	var gotReq models.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(models.ChatResponse{
			Response:   "normalized",
			AIResponse: "raw",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Send(context.Background(), "a question", "https://leetcode.com/problems/two-sum")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if result.DisplayText != "normalized" || result.RawText != "raw" {
		t.Errorf("result = %+v", result)
	}
	if gotReq.UserMessage != "a question" {
		t.Errorf("backend received userMessage %q", gotReq.UserMessage)
	}
	if gotReq.LeetcodeURL != "https://leetcode.com/problems/two-sum" {
		t.Errorf("backend received leetcodeUrl %q", gotReq.LeetcodeURL)
	}
	if gotReq.Context != "leetcode" {
		t.Errorf("backend received context %q", gotReq.Context)
	}
}

func TestSendBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ChatErrorResponse{
			Error:   "An error occurred while processing your request.",
			Details: "quota exceeded",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Send(context.Background(), "a question", "")

	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected an UpstreamError, got %T: %v", err, err)
	}
	if !strings.Contains(upstream.Detail, "quota exceeded") {
		t.Errorf("detail = %q, expected the backend details", upstream.Detail)
	}
}

func TestSendUnreachableBackend(t *testing.T) {
	c := New("http://127.0.0.1:1")

	_, err := c.Send(context.Background(), "a question", "")

	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected an UpstreamError, got %T: %v", err, err)
	}
}
