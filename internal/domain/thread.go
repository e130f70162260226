package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ThreadStatusActive   = "active"
	ThreadStatusArchived = "archived"

	ThreadSourceManual = "manual"
	ThreadSourceEmail  = "email"

	RoleGuest = "guest"
	RoleHost  = "host"
)

// Thread is a guest-host conversation scoped to a workspace and an
// optional property.
type Thread struct {
	ID          uuid.UUID      `json:"id"`
	WorkspaceID uuid.UUID      `json:"workspace_id"`
	PropertyID  *uuid.UUID     `json:"property_id"`
	Source      string         `json:"source"`
	Subject     string         `json:"subject"`
	GuestEmail  string         `json:"guest_email"`
	GuestName   string         `json:"guest_name"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Message is immutable once created. MessageTS ordering (oldest-first)
// is load-bearing for context construction.
type Message struct {
	ID        uuid.UUID      `json:"id"`
	ThreadID  uuid.UUID      `json:"thread_id"`
	Role      string         `json:"role"`
	Body      string         `json:"body"`
	Source    string         `json:"source"`
	MessageTS time.Time      `json:"message_ts"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}
