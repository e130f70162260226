package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hostops-ai/hostops/internal/domain"
)

func (q *Queries) CreateWorkspace(ctx context.Context, name string) (*domain.Workspace, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO workspaces (name)
		VALUES ($1)
		RETURNING id, name, created_at`,
		name,
	)

	var w domain.Workspace
	if err := row.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &w, nil
}

func (q *Queries) GetWorkspace(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, name, created_at
		FROM workspaces
		WHERE id = $1`,
		id,
	)

	var w domain.Workspace
	if err := row.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return &w, nil
}
