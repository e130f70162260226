package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/repository"
)

type WorkspaceService struct {
	queries *repository.Queries
}

func NewWorkspaceService(queries *repository.Queries) *WorkspaceService {
	return &WorkspaceService{queries: queries}
}

func (s *WorkspaceService) Create(ctx context.Context, name string) (*domain.Workspace, error) {
	if name == "" {
		return nil, domain.Invalid("workspace name is required")
	}
	return s.queries.CreateWorkspace(ctx, name)
}

func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	return s.queries.GetWorkspace(ctx, id)
}

type CreatePropertyInput struct {
	WorkspaceID uuid.UUID
	AirbnbID    string
	Title       string
	Description string
	PhotoURL    string
}

func (s *WorkspaceService) CreateProperty(ctx context.Context, input CreatePropertyInput) (*domain.Property, error) {
	if input.Title == "" {
		return nil, domain.Invalid("property title is required")
	}
	if _, err := s.queries.GetWorkspace(ctx, input.WorkspaceID); err != nil {
		return nil, err
	}
	return s.queries.CreateProperty(ctx, repository.CreatePropertyParams{
		WorkspaceID: input.WorkspaceID,
		AirbnbID:    input.AirbnbID,
		Title:       input.Title,
		Description: input.Description,
		PhotoURL:    input.PhotoURL,
	})
}

func (s *WorkspaceService) ListProperties(ctx context.Context, workspaceID uuid.UUID) ([]domain.Property, error) {
	if _, err := s.queries.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.queries.ListProperties(ctx, workspaceID)
}
