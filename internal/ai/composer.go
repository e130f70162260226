// Package ai defines the draft-generation backend contract. The
// pipeline talks to a Composer only; the rule-based StubComposer is the
// default and an LLM-backed implementation sits behind the same
// interface.
package ai

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hostops-ai/hostops/internal/domain"
)

// Message is one turn of conversation context, oldest-first.
type Message struct {
	Role      string
	Body      string
	Timestamp time.Time
}

// Context carries everything a Composer may use: the recent message
// window, retrieved knowledge snippets and the escalation keyword list.
type Context struct {
	Messages           []Message
	Snippets           []domain.Snippet
	EscalationKeywords []string
}

// Latest returns the most recent message, or nil when the window is
// empty.
func (c Context) Latest() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// DraftFields is the composer output persisted onto a draft record.
type DraftFields struct {
	DraftText        string
	Confidence       decimal.Decimal
	Escalated        bool
	EscalationReason *string
	SourcesUsed      []string
}

type Composer interface {
	Compose(ctx context.Context, draftCtx Context) (DraftFields, error)
	// Model identifies the backend on persisted drafts.
	Model() string
}
