package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hostops-ai/hostops/internal/domain"
)

type AddMessageParams struct {
	ThreadID uuid.UUID
	Role     string
	Body     string
	Source   string
	Metadata map[string]any
}

func (q *Queries) AddMessage(ctx context.Context, arg AddMessageParams) (*domain.Message, error) {
	if arg.Metadata == nil {
		arg.Metadata = map[string]any{}
	}
	row := q.db.QueryRow(ctx, `
		INSERT INTO messages (thread_id, role, body, source, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, thread_id, role, body, source, message_ts, metadata, created_at`,
		arg.ThreadID, arg.Role, arg.Body, arg.Source, arg.Metadata,
	)
	m, err := scanMessage(row)
	if err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	return m, nil
}

// RecentMessages returns the most recent limit messages of a thread,
// ordered oldest-first.
func (q *Queries) RecentMessages(ctx context.Context, threadID uuid.UUID, limit int) ([]domain.Message, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, thread_id, role, body, source, message_ts, metadata, created_at
		FROM (
			SELECT id, thread_id, role, body, source, message_ts, metadata, created_at
			FROM messages
			WHERE thread_id = $1
			ORDER BY message_ts DESC, created_at DESC
			LIMIT $2
		) recent
		ORDER BY message_ts ASC, created_at ASC`,
		threadID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (q *Queries) ListMessages(ctx context.Context, threadID uuid.UUID) ([]domain.Message, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, thread_id, role, body, source, message_ts, metadata, created_at
		FROM messages
		WHERE thread_id = $1
		ORDER BY message_ts ASC, created_at ASC`,
		threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]domain.Message, error) {
	var msgs []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.ThreadID, &m.Role, &m.Body, &m.Source, &m.MessageTS, &m.Metadata, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
