package models

import "time"

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
	SpeakerSystem    Speaker = "system"
)

// ProblemReference identifies a LeetCode problem derived from its URL.
// The identifier is the catalog slug and the display title is the slug
// humanized into title-cased words.
type ProblemReference struct {
	Identifier   string `json:"identifier"`
	DisplayTitle string `json:"display_title"`
	SourceURL    string `json:"source_url"`
}

// Difficulty is a heuristic guess derived from a problem's title text.
// It is never authoritative: the extractor performs no catalog lookup.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Turn is one message unit in a conversation. Turns are immutable once
// created and the history only ever grows by appending.
type Turn struct {
	Speaker   Speaker           `json:"speaker"`
	Text      string            `json:"text"`
	RawText   string            `json:"raw_text,omitempty"`
	Reference *ProblemReference `json:"reference,omitempty"`
	Error     bool              `json:"error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// ChatRequest is the POST /api/chat payload. Field names match the
// frontend contract.
type ChatRequest struct {
	UserMessage string `json:"userMessage"`
	LeetcodeURL string `json:"leetcodeUrl"`
	Context     string `json:"context"`
}

// ChatResponse carries the normalized text for display plus the raw
// completion for diagnostic viewing.
type ChatResponse struct {
	Response   string `json:"response"`
	AIResponse string `json:"aiResponse"`
}

type ChatErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ExchangeResult is the outcome of one full request/response cycle with
// the model capability.
type ExchangeResult struct {
	DisplayText string
	RawText     string
	Succeeded   bool
	ErrorDetail string
}
