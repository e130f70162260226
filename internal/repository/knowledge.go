package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hostops-ai/hostops/internal/domain"
)

type CreateDocumentParams struct {
	WorkspaceID uuid.UUID
	ScopeType   string
	ScopeID     *uuid.UUID
	Title       string
	Content     string
}

func (q *Queries) CreateDocument(ctx context.Context, arg CreateDocumentParams) (*domain.KBDocument, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO kb_documents (workspace_id, scope_type, scope_id, title, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, workspace_id, scope_type, scope_id, title, content, created_at, updated_at`,
		arg.WorkspaceID, arg.ScopeType, arg.ScopeID, arg.Title, arg.Content,
	)
	d, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return d, nil
}

func (q *Queries) GetDocument(ctx context.Context, id uuid.UUID) (*domain.KBDocument, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, workspace_id, scope_type, scope_id, title, content, created_at, updated_at
		FROM kb_documents
		WHERE id = $1`,
		id,
	)
	d, err := scanDocument(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

type UpdateDocumentParams struct {
	ID      uuid.UUID
	Title   string
	Content string
}

func (q *Queries) UpdateDocument(ctx context.Context, arg UpdateDocumentParams) (*domain.KBDocument, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE kb_documents
		SET title = $2, content = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, workspace_id, scope_type, scope_id, title, content, created_at, updated_at`,
		arg.ID, arg.Title, arg.Content,
	)
	d, err := scanDocument(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("update document: %w", err)
	}
	return d, nil
}

func (q *Queries) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM kb_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (q *Queries) ListDocuments(ctx context.Context, workspaceID uuid.UUID) ([]domain.KBDocument, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, workspace_id, scope_type, scope_id, title, content, created_at, updated_at
		FROM kb_documents
		WHERE workspace_id = $1
		ORDER BY created_at`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.KBDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

// WorkspaceDocuments returns workspace-scoped snippets in insertion
// order, for retrieval without keywords.
func (q *Queries) WorkspaceDocuments(ctx context.Context, workspaceID uuid.UUID, limit int) ([]domain.Snippet, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, content
		FROM kb_documents
		WHERE workspace_id = $1 AND scope_type = $2
		ORDER BY created_at
		LIMIT $3`,
		workspaceID, domain.ScopeWorkspace, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("workspace documents: %w", err)
	}
	defer rows.Close()
	return collectSnippets(rows)
}

// SearchWorkspaceDocuments matches workspace-scoped documents whose
// content contains any of the keywords, case-insensitively.
func (q *Queries) SearchWorkspaceDocuments(ctx context.Context, workspaceID uuid.UUID, keywords []string, limit int) ([]domain.Snippet, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, content
		FROM kb_documents
		WHERE workspace_id = $1 AND scope_type = $2 AND content ILIKE ANY($3)
		ORDER BY created_at
		LIMIT $4`,
		workspaceID, domain.ScopeWorkspace, likePatterns(keywords), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search workspace documents: %w", err)
	}
	defer rows.Close()
	return collectSnippets(rows)
}

// SearchPropertyDocuments is the property-scoped counterpart of
// SearchWorkspaceDocuments.
func (q *Queries) SearchPropertyDocuments(ctx context.Context, workspaceID, propertyID uuid.UUID, keywords []string, limit int) ([]domain.Snippet, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, content
		FROM kb_documents
		WHERE workspace_id = $1 AND scope_type = $2 AND scope_id = $3 AND content ILIKE ANY($4)
		ORDER BY created_at
		LIMIT $5`,
		workspaceID, domain.ScopeProperty, propertyID, likePatterns(keywords), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search property documents: %w", err)
	}
	defer rows.Close()
	return collectSnippets(rows)
}

func likePatterns(keywords []string) []string {
	patterns := make([]string, len(keywords))
	for i, kw := range keywords {
		patterns[i] = "%" + kw + "%"
	}
	return patterns
}

func collectSnippets(rows pgx.Rows) ([]domain.Snippet, error) {
	var snippets []domain.Snippet
	for rows.Next() {
		var s domain.Snippet
		if err := rows.Scan(&s.ID, &s.Content); err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		snippets = append(snippets, s)
	}
	return snippets, rows.Err()
}

func scanDocument(row pgx.Row) (*domain.KBDocument, error) {
	var d domain.KBDocument
	err := row.Scan(&d.ID, &d.WorkspaceID, &d.ScopeType, &d.ScopeID, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
