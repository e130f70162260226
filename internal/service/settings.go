package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/ai"
	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/repository"
)

type SettingsService struct {
	queries *repository.Queries
}

func NewSettingsService(queries *repository.Queries) *SettingsService {
	return &SettingsService{queries: queries}
}

// Get returns workspace settings, synthesizing the default escalation
// configuration when none has been saved yet.
func (s *SettingsService) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceSettings, error) {
	if _, err := s.queries.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	settings, err := s.queries.GetSettings(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return &domain.WorkspaceSettings{
				WorkspaceID:        workspaceID,
				EscalationKeywords: ai.DefaultEscalationKeywords,
				AutoEscalate:       false,
				Settings:           map[string]any{},
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

type UpdateSettingsInput struct {
	WorkspaceID        uuid.UUID
	EscalationKeywords []string
	AutoEscalate       bool
	Settings           map[string]any
}

func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*domain.WorkspaceSettings, error) {
	if _, err := s.queries.GetWorkspace(ctx, input.WorkspaceID); err != nil {
		return nil, err
	}
	return s.queries.UpsertSettings(ctx, repository.UpsertSettingsParams{
		WorkspaceID:        input.WorkspaceID,
		EscalationKeywords: input.EscalationKeywords,
		AutoEscalate:       input.AutoEscalate,
		Settings:           input.Settings,
	})
}
