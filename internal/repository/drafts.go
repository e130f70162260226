package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hostops-ai/hostops/internal/domain"
)

type CreateDraftParams struct {
	ThreadID         uuid.UUID
	DraftText        string
	Confidence       decimal.Decimal
	Escalated        bool
	EscalationReason *string
	SourcesUsed      []string
	ModelUsed        string
	Metadata         map[string]any
}

// CreateDraft inserts a draft row. The insert is a single statement, so
// either the full draft lands or nothing does.
func (q *Queries) CreateDraft(ctx context.Context, arg CreateDraftParams) (*domain.Draft, error) {
	if arg.SourcesUsed == nil {
		arg.SourcesUsed = []string{}
	}
	if arg.Metadata == nil {
		arg.Metadata = map[string]any{}
	}
	row := q.db.QueryRow(ctx, `
		INSERT INTO ai_drafts (thread_id, draft_text, confidence, escalated, escalation_reason, sources_used, model_used, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, thread_id, draft_text, confidence, escalated, escalation_reason, sources_used, model_used, metadata, created_at`,
		arg.ThreadID, arg.DraftText, arg.Confidence, arg.Escalated, arg.EscalationReason,
		arg.SourcesUsed, arg.ModelUsed, arg.Metadata,
	)
	d, err := scanDraft(row)
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return d, nil
}

func (q *Queries) ListDraftsByThread(ctx context.Context, threadID uuid.UUID) ([]domain.Draft, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, thread_id, draft_text, confidence, escalated, escalation_reason, sources_used, model_used, metadata, created_at
		FROM ai_drafts
		WHERE thread_id = $1
		ORDER BY created_at DESC`,
		threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []domain.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var d domain.Draft
	err := row.Scan(&d.ID, &d.ThreadID, &d.DraftText, &d.Confidence, &d.Escalated,
		&d.EscalationReason, &d.SourcesUsed, &d.ModelUsed, &d.Metadata, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
