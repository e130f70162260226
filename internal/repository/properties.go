package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hostops-ai/hostops/internal/domain"
)

type CreatePropertyParams struct {
	WorkspaceID uuid.UUID
	AirbnbID    string
	Title       string
	Description string
	PhotoURL    string
}

func (q *Queries) CreateProperty(ctx context.Context, arg CreatePropertyParams) (*domain.Property, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO properties (workspace_id, airbnb_id, title, description, photo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, workspace_id, airbnb_id, title, description, photo_url, created_at`,
		arg.WorkspaceID, arg.AirbnbID, arg.Title, arg.Description, arg.PhotoURL,
	)
	return scanProperty(row)
}

func (q *Queries) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, workspace_id, airbnb_id, title, description, photo_url, created_at
		FROM properties
		WHERE id = $1`,
		id,
	)
	p, err := scanProperty(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func (q *Queries) ListProperties(ctx context.Context, workspaceID uuid.UUID) ([]domain.Property, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, workspace_id, airbnb_id, title, description, photo_url, created_at
		FROM properties
		WHERE workspace_id = $1
		ORDER BY created_at`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var props []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.WorkspaceID, &p.AirbnbID, &p.Title, &p.Description, &p.PhotoURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
