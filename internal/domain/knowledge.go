package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ScopeWorkspace = "workspace"
	ScopeProperty  = "property"
)

// KBDocument is operator-authored reference text, read-only to the
// draft pipeline. Scope is either workspace-wide (ScopeID nil) or a
// specific property.
type KBDocument struct {
	ID          uuid.UUID  `json:"id"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	ScopeType   string     `json:"scope_type"`
	ScopeID     *uuid.UUID `json:"scope_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Snippet is the retrieval view of a document: just enough to build
// generation context and trace sources_used back to documents.
type Snippet struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
}
