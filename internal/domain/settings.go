package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceSettings holds the per-workspace escalation configuration.
// When a workspace has no row (or an empty keyword list), the pipeline
// falls back to ai.DefaultEscalationKeywords.
type WorkspaceSettings struct {
	WorkspaceID        uuid.UUID      `json:"workspace_id"`
	EscalationKeywords []string       `json:"escalation_keywords"`
	AutoEscalate       bool           `json:"auto_escalate"`
	Settings           map[string]any `json:"settings"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
