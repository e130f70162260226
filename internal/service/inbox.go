package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/mail"
	"github.com/hostops-ai/hostops/internal/repository"
)

// InboxService owns thread and message ingestion, both from the email
// webhook and from manual dashboard entry.
type InboxService struct {
	queries    *repository.Queries
	recipients *mail.RecipientParser
}

func NewInboxService(queries *repository.Queries, inboundPrefix string) *InboxService {
	return &InboxService{queries: queries, recipients: mail.NewRecipientParser(inboundPrefix)}
}

// InboundEmail is a SendGrid-style inbound-parse payload.
type InboundEmail struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
	Headers string
}

type IngestResult struct {
	ThreadID      uuid.UUID `json:"thread_id"`
	MessageID     uuid.UUID `json:"message_id"`
	ThreadCreated bool      `json:"thread_created"`
}

// Ingest find-or-creates an active thread matching (workspace, guest
// email, subject) and appends the guest message to it.
//
// The match is a read followed by a conditional create; without a
// uniqueness constraint two concurrent deliveries of the same new
// conversation can both create a thread. Accepted for now.
func (s *InboxService) Ingest(ctx context.Context, payload InboundEmail) (*IngestResult, error) {
	if payload.To == "" || payload.From == "" {
		return nil, domain.Invalid("missing required fields: to, from, text")
	}

	body := payload.Text
	if body == "" && payload.HTML != "" {
		extracted, err := mail.HTMLToText(payload.HTML)
		if err != nil {
			slog.Warn("failed to extract text from html body", "error", err)
		} else {
			body = extracted
		}
	}
	if body == "" {
		return nil, domain.Invalid("missing required fields: to, from, text")
	}

	workspaceID, err := s.recipients.WorkspaceID(payload.To)
	if err != nil {
		return nil, err
	}
	if _, err := s.queries.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	guestName, guestEmail := mail.ParseSender(payload.From)

	thread, err := s.queries.FindActiveThread(ctx, repository.FindActiveThreadParams{
		WorkspaceID: workspaceID,
		GuestEmail:  guestEmail,
		Subject:     payload.Subject,
	})
	created := false
	switch {
	case err == nil:
		if err := s.queries.TouchThread(ctx, thread.ID); err != nil {
			slog.Warn("failed to touch thread", "thread_id", thread.ID, "error", err)
		}
	case errors.Is(err, domain.ErrThreadNotFound):
		thread, err = s.queries.CreateThread(ctx, repository.CreateThreadParams{
			WorkspaceID: workspaceID,
			Source:      domain.ThreadSourceEmail,
			Subject:     payload.Subject,
			GuestEmail:  guestEmail,
			GuestName:   guestName,
			Metadata:    map[string]any{"headers": parseHeaders(payload.Headers)},
		})
		if err != nil {
			return nil, fmt.Errorf("create thread: %w", err)
		}
		created = true
	default:
		return nil, fmt.Errorf("find thread: %w", err)
	}

	msg, err := s.queries.AddMessage(ctx, repository.AddMessageParams{
		ThreadID: thread.ID,
		Role:     domain.RoleGuest,
		Body:     body,
		Source:   domain.ThreadSourceEmail,
		Metadata: map[string]any{
			"from":    payload.From,
			"subject": payload.Subject,
			"html":    payload.HTML,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	slog.Info("inbound message ingested",
		"workspace_id", workspaceID,
		"thread_id", thread.ID,
		"thread_created", created,
	)
	return &IngestResult{ThreadID: thread.ID, MessageID: msg.ID, ThreadCreated: created}, nil
}

type CreateThreadInput struct {
	WorkspaceID uuid.UUID
	PropertyID  *uuid.UUID
	Subject     string
	GuestEmail  string
	GuestName   string
}

// CreateThread opens a manual thread from the dashboard.
func (s *InboxService) CreateThread(ctx context.Context, input CreateThreadInput) (*domain.Thread, error) {
	if _, err := s.queries.GetWorkspace(ctx, input.WorkspaceID); err != nil {
		return nil, err
	}
	if input.PropertyID != nil {
		prop, err := s.queries.GetProperty(ctx, *input.PropertyID)
		if err != nil {
			return nil, err
		}
		if prop.WorkspaceID != input.WorkspaceID {
			return nil, domain.Invalid("property belongs to a different workspace")
		}
	}
	return s.queries.CreateThread(ctx, repository.CreateThreadParams{
		WorkspaceID: input.WorkspaceID,
		PropertyID:  input.PropertyID,
		Source:      domain.ThreadSourceManual,
		Subject:     input.Subject,
		GuestEmail:  input.GuestEmail,
		GuestName:   input.GuestName,
	})
}

// AppendMessage adds a manually entered message to a thread.
func (s *InboxService) AppendMessage(ctx context.Context, threadID uuid.UUID, role, body string) (*domain.Message, error) {
	if role != domain.RoleGuest && role != domain.RoleHost {
		return nil, domain.Invalid("role must be %q or %q", domain.RoleGuest, domain.RoleHost)
	}
	if body == "" {
		return nil, domain.Invalid("message body is required")
	}
	if _, err := s.queries.GetThread(ctx, threadID); err != nil {
		return nil, err
	}
	msg, err := s.queries.AddMessage(ctx, repository.AddMessageParams{
		ThreadID: threadID,
		Role:     role,
		Body:     body,
		Source:   domain.ThreadSourceManual,
	})
	if err != nil {
		return nil, err
	}
	if err := s.queries.TouchThread(ctx, threadID); err != nil {
		slog.Warn("failed to touch thread", "thread_id", threadID, "error", err)
	}
	return msg, nil
}

// ThreadWithMessages is the inbox detail view.
type ThreadWithMessages struct {
	Thread   *domain.Thread   `json:"thread"`
	Messages []domain.Message `json:"messages"`
}

func (s *InboxService) GetThread(ctx context.Context, threadID uuid.UUID) (*ThreadWithMessages, error) {
	thread, err := s.queries.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.queries.ListMessages(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return &ThreadWithMessages{Thread: thread, Messages: msgs}, nil
}

func (s *InboxService) ListThreads(ctx context.Context, workspaceID uuid.UUID) ([]domain.Thread, error) {
	if _, err := s.queries.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.queries.ListThreads(ctx, workspaceID)
}

func (s *InboxService) ArchiveThread(ctx context.Context, threadID uuid.UUID) error {
	return s.queries.SetThreadStatus(ctx, threadID, domain.ThreadStatusArchived)
}

func parseHeaders(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	headers := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &headers); err != nil {
		return map[string]any{}
	}
	return headers
}
