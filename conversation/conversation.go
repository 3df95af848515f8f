// Package conversation tracks the client-side state of one chat: the
// ordered turn history, the currently pinned problem reference, and the
// single-flight exchange guard.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"leetcode-assistant/models"
	"leetcode-assistant/services"
)

// State is the coarse status of the conversation.
type State int

const (
	StateIdle State = iota
	StateSending
	// StateError is transient: a failed exchange records an error turn
	// and the conversation returns to Idle, so the session stays usable.
	StateError
)

// ApologyMessage is the fixed user-facing text recorded when an
// exchange fails.
const ApologyMessage = "Sorry, I encountered an error. Please try again."

// Canned prompts for the quick-action shortcuts.
const (
	QuickActionExplain    = "Explain the algorithm to solve this problem step by step"
	QuickActionComplexity = "What's the time and space complexity of the optimal solution?"
	QuickActionSolution   = "Show me the optimal solution in JavaScript with comments"
)

const problemAnnouncementTemplate = "I'm working on this LeetCode problem: %s."

var (
	// ErrEmptySubmission: a submit with no text and no supplementary
	// context is a no-op; no turn is appended and no exchange occurs.
	ErrEmptySubmission = errors.New("empty submission")

	// ErrExchangeInFlight: only one exchange may be in flight at a time
	// per conversation.
	ErrExchangeInFlight = errors.New("an exchange is already in flight")
)

// Exchanger performs one exchange against the backend.
type Exchanger interface {
	Send(ctx context.Context, userMessage, problemURL string) (*models.ExchangeResult, error)
}

// Conversation owns the turn sequence and the pinned reference for the
// lifetime of one client session. Turns are append-only.
type Conversation struct {
	mu        sync.Mutex
	exchanger Exchanger
	problems  *services.ProblemService

	turns  []models.Turn
	pinned *models.ProblemReference
	state  State
}

func New(exchanger Exchanger, problems *services.ProblemService) *Conversation {
	return &Conversation{
		exchanger: exchanger,
		problems:  problems,
		state:     StateIdle,
	}
}

func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Turns returns a copy of the visible history.
func (c *Conversation) Turns() []models.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Turn(nil), c.turns...)
}

// PinnedReference returns the problem currently associated with the
// conversation, or nil.
func (c *Conversation) PinnedReference() *models.ProblemReference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pinned
}

// PinReference explicitly associates a problem URL with the
// conversation without sending a message. A URL that does not resolve
// to a catalog problem leaves the current pin untouched.
func (c *Conversation) PinReference(url string) *models.ProblemReference {
	ref := c.problems.Extract(url)
	if ref == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinned = ref
	return ref
}

// Submit sends the user's text through one full exchange. A reference
// pasted inline is detected and pinned before the prompt is composed.
// The returned turn is the assistant's reply; on upstream failure it
// carries the apology text with Error set and the conversation returns
// to Idle.
func (c *Conversation) Submit(ctx context.Context, text string) (*models.Turn, error) {
	return c.submit(ctx, text, "")
}

// QuickAction submits a canned prompt, prefixed with the problem
// announcement when a reference is pinned.
func (c *Conversation) QuickAction(ctx context.Context, promptText string) (*models.Turn, error) {
	prefix := ""
	c.mu.Lock()
	if c.pinned != nil {
		prefix = fmt.Sprintf(problemAnnouncementTemplate, c.pinned.SourceURL)
	}
	c.mu.Unlock()

	return c.submit(ctx, promptText, prefix)
}

// PinAndAnnounce pins a problem URL and immediately sends the
// announcement as supplementary context, with no user question text.
func (c *Conversation) PinAndAnnounce(ctx context.Context, url string) (*models.Turn, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptySubmission
	}
	c.PinReference(url)
	return c.submit(ctx, "", fmt.Sprintf(problemAnnouncementTemplate, url))
}

func (c *Conversation) submit(ctx context.Context, text, supplementaryContext string) (*models.Turn, error) {
	if strings.TrimSpace(text) == "" && supplementaryContext == "" {
		return nil, ErrEmptySubmission
	}

	c.mu.Lock()
	if c.state == StateSending {
		c.mu.Unlock()
		return nil, ErrExchangeInFlight
	}

	if url := c.problems.DetectReference(text); url != "" {
		if ref := c.problems.Extract(url); ref != nil {
			c.pinned = ref
		}
	}

	messageToSend := text
	if supplementaryContext != "" {
		messageToSend = supplementaryContext + " " + text
	}

	c.turns = append(c.turns, models.Turn{
		Speaker:   models.SpeakerUser,
		Text:      text,
		Reference: c.pinned,
		CreatedAt: time.Now(),
	})
	c.state = StateSending

	pinnedURL := ""
	if c.pinned != nil {
		pinnedURL = c.pinned.SourceURL
	}
	c.mu.Unlock()

	result, err := c.exchanger.Send(ctx, messageToSend, pinnedURL)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// The failure is absorbed into an error-flagged turn; the detail
		// string rides along for diagnostic display.
		turn := models.Turn{
			Speaker:   models.SpeakerAssistant,
			Text:      ApologyMessage,
			RawText:   err.Error(),
			Error:     true,
			CreatedAt: time.Now(),
		}
		c.turns = append(c.turns, turn)
		c.state = StateIdle
		return &turn, nil
	}

	turn := models.Turn{
		Speaker:   models.SpeakerAssistant,
		Text:      result.DisplayText,
		RawText:   result.RawText,
		CreatedAt: time.Now(),
	}
	c.turns = append(c.turns, turn)
	c.state = StateIdle
	return &turn, nil
}
