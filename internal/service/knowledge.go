package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/repository"
)

// KnowledgeService is the operator-facing CRUD over kb documents. The
// pipeline only ever reads them, through the retriever.
type KnowledgeService struct {
	queries *repository.Queries
}

func NewKnowledgeService(queries *repository.Queries) *KnowledgeService {
	return &KnowledgeService{queries: queries}
}

type CreateDocumentInput struct {
	WorkspaceID uuid.UUID
	ScopeType   string
	ScopeID     *uuid.UUID
	Title       string
	Content     string
}

func (s *KnowledgeService) Create(ctx context.Context, input CreateDocumentInput) (*domain.KBDocument, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.Invalid("title and content are required")
	}
	if _, err := s.queries.GetWorkspace(ctx, input.WorkspaceID); err != nil {
		return nil, err
	}

	switch input.ScopeType {
	case domain.ScopeWorkspace:
		if input.ScopeID != nil {
			return nil, domain.Invalid("workspace-scoped documents must not carry a scope_id")
		}
	case domain.ScopeProperty:
		if input.ScopeID == nil {
			return nil, domain.Invalid("property-scoped documents require a scope_id")
		}
		prop, err := s.queries.GetProperty(ctx, *input.ScopeID)
		if err != nil {
			return nil, err
		}
		if prop.WorkspaceID != input.WorkspaceID {
			return nil, domain.Invalid("property belongs to a different workspace")
		}
	default:
		return nil, domain.Invalid("scope_type must be %q or %q", domain.ScopeWorkspace, domain.ScopeProperty)
	}

	return s.queries.CreateDocument(ctx, repository.CreateDocumentParams{
		WorkspaceID: input.WorkspaceID,
		ScopeType:   input.ScopeType,
		ScopeID:     input.ScopeID,
		Title:       input.Title,
		Content:     input.Content,
	})
}

func (s *KnowledgeService) Update(ctx context.Context, id uuid.UUID, title, content string) (*domain.KBDocument, error) {
	if title == "" || content == "" {
		return nil, domain.Invalid("title and content are required")
	}
	return s.queries.UpdateDocument(ctx, repository.UpdateDocumentParams{
		ID:      id,
		Title:   title,
		Content: content,
	})
}

func (s *KnowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.queries.DeleteDocument(ctx, id)
}

func (s *KnowledgeService) List(ctx context.Context, workspaceID uuid.UUID) ([]domain.KBDocument, error) {
	if _, err := s.queries.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.queries.ListDocuments(ctx, workspaceID)
}
