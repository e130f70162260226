// Package pipeline implements draft generation: keyword extraction,
// scoped knowledge retrieval, and orchestration of the composer and
// the persistence of its output.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/ai"
	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/repository"
)

type ThreadStore interface {
	GetThread(ctx context.Context, id uuid.UUID) (*domain.Thread, error)
}

type MessageStore interface {
	RecentMessages(ctx context.Context, threadID uuid.UUID, limit int) ([]domain.Message, error)
}

type SettingsStore interface {
	GetSettings(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceSettings, error)
}

type DraftStore interface {
	CreateDraft(ctx context.Context, arg repository.CreateDraftParams) (*domain.Draft, error)
}

// Pipeline runs one generation request end to end. It is stateless
// across requests; concurrent generations for the same thread are
// allowed and each produces an independent draft record.
type Pipeline struct {
	threads   ThreadStore
	messages  MessageStore
	settings  SettingsStore
	drafts    DraftStore
	retriever *Retriever
	composer  ai.Composer
	window    int
}

type Deps struct {
	Threads   ThreadStore
	Messages  MessageStore
	Settings  SettingsStore
	Drafts    DraftStore
	Retriever *Retriever
	Composer  ai.Composer
	// Window is the most-recent-N message context size (default 10).
	Window int
}

func New(deps Deps) *Pipeline {
	if deps.Window <= 0 {
		deps.Window = 10
	}
	return &Pipeline{
		threads:   deps.Threads,
		messages:  deps.Messages,
		settings:  deps.Settings,
		drafts:    deps.Drafts,
		retriever: deps.Retriever,
		composer:  deps.Composer,
		window:    deps.Window,
	}
}

// Generate loads the thread context, runs extraction, retrieval and
// composition, and persists the resulting draft. On error nothing is
// persisted.
func (p *Pipeline) Generate(ctx context.Context, threadID uuid.UUID) (*domain.Draft, error) {
	thread, err := p.threads.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	msgs, err := p.messages.RecentMessages(ctx, threadID, p.window)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if len(msgs) == 0 {
		return nil, domain.ErrThreadEmpty
	}

	keywords := ExtractKeywords(msgs[len(msgs)-1].Body, config.MaxKeywords)
	snippets := p.retriever.Retrieve(ctx, thread.WorkspaceID, thread.PropertyID, keywords)

	fields, err := p.composer.Compose(ctx, ai.Context{
		Messages:           toComposerMessages(msgs),
		Snippets:           snippets,
		EscalationKeywords: p.escalationKeywords(ctx, thread.WorkspaceID),
	})
	if err != nil {
		return nil, fmt.Errorf("compose draft: %w", err)
	}

	draft, err := p.drafts.CreateDraft(ctx, repository.CreateDraftParams{
		ThreadID:         threadID,
		DraftText:        fields.DraftText,
		Confidence:       fields.Confidence,
		Escalated:        fields.Escalated,
		EscalationReason: fields.EscalationReason,
		SourcesUsed:      fields.SourcesUsed,
		ModelUsed:        p.composer.Model(),
		Metadata: map[string]any{
			"message_count":  len(msgs),
			"kb_chunks_used": len(snippets),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	slog.Info("draft generated",
		"thread_id", threadID,
		"escalated", draft.Escalated,
		"keywords", len(keywords),
		"kb_chunks", len(snippets),
		"model", draft.ModelUsed,
	)
	return draft, nil
}

// escalationKeywords resolves the workspace keyword list, falling back
// to the default set when none is configured or the lookup fails.
func (p *Pipeline) escalationKeywords(ctx context.Context, workspaceID uuid.UUID) []string {
	settings, err := p.settings.GetSettings(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsNotFound) {
			slog.Warn("settings lookup failed, using default escalation keywords",
				"workspace_id", workspaceID, "error", err)
		}
		return ai.DefaultEscalationKeywords
	}
	if len(settings.EscalationKeywords) == 0 {
		return ai.DefaultEscalationKeywords
	}
	return settings.EscalationKeywords
}

func toComposerMessages(msgs []domain.Message) []ai.Message {
	out := make([]ai.Message, len(msgs))
	for i, m := range msgs {
		out[i] = ai.Message{Role: m.Role, Body: m.Body, Timestamp: m.MessageTS}
	}
	return out
}
