package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft is a generated candidate reply awaiting human review. Drafts
// are append-only: a thread accumulates one per generation attempt.
type Draft struct {
	ID               uuid.UUID       `json:"id"`
	ThreadID         uuid.UUID       `json:"thread_id"`
	DraftText        string          `json:"draft_text"`
	Confidence       decimal.Decimal `json:"confidence"`
	Escalated        bool            `json:"escalated"`
	EscalationReason *string         `json:"escalation_reason"`
	SourcesUsed      []string        `json:"sources_used"`
	ModelUsed        string          `json:"model_used"`
	Metadata         map[string]any  `json:"metadata"`
	CreatedAt        time.Time       `json:"created_at"`
}
