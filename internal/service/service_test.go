package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
)

// Validation happens before any query runs, so these services operate
// on a nil query layer.

func TestIngestValidation(t *testing.T) {
	svc := NewInboxService(nil, "inbound")

	tests := []struct {
		name    string
		payload InboundEmail
	}{
		{
			name:    "missing to",
			payload: InboundEmail{From: "jane@example.com", Text: "hello"},
		},
		{
			name:    "missing from",
			payload: InboundEmail{To: "inbound+x@mail.example.com", Text: "hello"},
		},
		{
			name:    "missing body",
			payload: InboundEmail{To: "inbound+x@mail.example.com", From: "jane@example.com"},
		},
		{
			name: "recipient without workspace id",
			payload: InboundEmail{
				To:   "support@mail.example.com",
				From: "jane@example.com",
				Text: "hello",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Ingest(context.Background(), tt.payload)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("Ingest(%+v) = %v, want ErrInvalidInput", tt.payload, err)
			}
		})
	}
}

func TestAppendMessageValidation(t *testing.T) {
	svc := NewInboxService(nil, "inbound")
	threadID := uuid.New()

	if _, err := svc.AppendMessage(context.Background(), threadID, "system", "hello"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("invalid role: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AppendMessage(context.Background(), threadID, domain.RoleGuest, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty body: got %v, want ErrInvalidInput", err)
	}
}

func TestCreateWorkspaceValidation(t *testing.T) {
	svc := NewWorkspaceService(nil)

	if _, err := svc.Create(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty name: got %v, want ErrInvalidInput", err)
	}
}

func TestKnowledgeValidation(t *testing.T) {
	svc := NewKnowledgeService(nil)

	if _, err := svc.Create(context.Background(), CreateDocumentInput{
		WorkspaceID: uuid.New(),
		ScopeType:   domain.ScopeWorkspace,
		Content:     "content without a title",
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing title: got %v, want ErrInvalidInput", err)
	}

	if _, err := svc.Update(context.Background(), uuid.New(), "title", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing content: got %v, want ErrInvalidInput", err)
	}
}
