package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hostops-ai/hostops/internal/domain"
)

type CreateThreadParams struct {
	WorkspaceID uuid.UUID
	PropertyID  *uuid.UUID
	Source      string
	Subject     string
	GuestEmail  string
	GuestName   string
	Metadata    map[string]any
}

func (q *Queries) CreateThread(ctx context.Context, arg CreateThreadParams) (*domain.Thread, error) {
	if arg.Metadata == nil {
		arg.Metadata = map[string]any{}
	}
	row := q.db.QueryRow(ctx, `
		INSERT INTO threads (workspace_id, property_id, source, subject, guest_email, guest_name, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, workspace_id, property_id, source, subject, guest_email, guest_name, status, metadata, created_at, updated_at`,
		arg.WorkspaceID, arg.PropertyID, arg.Source, arg.Subject, arg.GuestEmail, arg.GuestName, arg.Metadata,
	)
	t, err := scanThread(row)
	if err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	return t, nil
}

func (q *Queries) GetThread(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, workspace_id, property_id, source, subject, guest_email, guest_name, status, metadata, created_at, updated_at
		FROM threads
		WHERE id = $1`,
		id,
	)
	t, err := scanThread(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrThreadNotFound
		}
		return nil, fmt.Errorf("get thread: %w", err)
	}
	return t, nil
}

type FindActiveThreadParams struct {
	WorkspaceID uuid.UUID
	GuestEmail  string
	Subject     string
}

// FindActiveThread returns the newest active thread matching guest
// email and subject, or domain.ErrThreadNotFound.
func (q *Queries) FindActiveThread(ctx context.Context, arg FindActiveThreadParams) (*domain.Thread, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, workspace_id, property_id, source, subject, guest_email, guest_name, status, metadata, created_at, updated_at
		FROM threads
		WHERE workspace_id = $1 AND guest_email = $2 AND subject = $3 AND status = $4
		ORDER BY created_at DESC
		LIMIT 1`,
		arg.WorkspaceID, arg.GuestEmail, arg.Subject, domain.ThreadStatusActive,
	)
	t, err := scanThread(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrThreadNotFound
		}
		return nil, fmt.Errorf("find active thread: %w", err)
	}
	return t, nil
}

func (q *Queries) TouchThread(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, `UPDATE threads SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch thread: %w", err)
	}
	return nil
}

func (q *Queries) SetThreadStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := q.db.Exec(ctx, `UPDATE threads SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set thread status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (q *Queries) ListThreads(ctx context.Context, workspaceID uuid.UUID) ([]domain.Thread, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, workspace_id, property_id, source, subject, guest_email, guest_name, status, metadata, created_at, updated_at
		FROM threads
		WHERE workspace_id = $1
		ORDER BY updated_at DESC`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, fmt.Errorf("scan thread: %w", err)
		}
		threads = append(threads, *t)
	}
	return threads, rows.Err()
}

func scanThread(row pgx.Row) (*domain.Thread, error) {
	var t domain.Thread
	err := row.Scan(&t.ID, &t.WorkspaceID, &t.PropertyID, &t.Source, &t.Subject,
		&t.GuestEmail, &t.GuestName, &t.Status, &t.Metadata, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
