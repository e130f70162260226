package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hostops-ai/hostops/internal/domain"
)

func (q *Queries) GetSettings(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceSettings, error) {
	row := q.db.QueryRow(ctx, `
		SELECT workspace_id, escalation_keywords, auto_escalate, settings, created_at, updated_at
		FROM workspace_settings
		WHERE workspace_id = $1`,
		workspaceID,
	)
	s, err := scanSettings(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

type UpsertSettingsParams struct {
	WorkspaceID        uuid.UUID
	EscalationKeywords []string
	AutoEscalate       bool
	Settings           map[string]any
}

func (q *Queries) UpsertSettings(ctx context.Context, arg UpsertSettingsParams) (*domain.WorkspaceSettings, error) {
	if arg.EscalationKeywords == nil {
		arg.EscalationKeywords = []string{}
	}
	if arg.Settings == nil {
		arg.Settings = map[string]any{}
	}
	row := q.db.QueryRow(ctx, `
		INSERT INTO workspace_settings (workspace_id, escalation_keywords, auto_escalate, settings)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (workspace_id) DO UPDATE
		SET escalation_keywords = EXCLUDED.escalation_keywords,
		    auto_escalate = EXCLUDED.auto_escalate,
		    settings = EXCLUDED.settings,
		    updated_at = now()
		RETURNING workspace_id, escalation_keywords, auto_escalate, settings, created_at, updated_at`,
		arg.WorkspaceID, arg.EscalationKeywords, arg.AutoEscalate, arg.Settings,
	)
	s, err := scanSettings(row)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return s, nil
}

func scanSettings(row pgx.Row) (*domain.WorkspaceSettings, error) {
	var s domain.WorkspaceSettings
	err := row.Scan(&s.WorkspaceID, &s.EscalationKeywords, &s.AutoEscalate, &s.Settings, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
