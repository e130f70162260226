package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hostops-ai/hostops/internal/domain"
)

// KnowledgeSearcher is the retrieval view of the knowledge store.
type KnowledgeSearcher interface {
	WorkspaceDocuments(ctx context.Context, workspaceID uuid.UUID, limit int) ([]domain.Snippet, error)
	SearchWorkspaceDocuments(ctx context.Context, workspaceID uuid.UUID, keywords []string, limit int) ([]domain.Snippet, error)
	SearchPropertyDocuments(ctx context.Context, workspaceID, propertyID uuid.UUID, keywords []string, limit int) ([]domain.Snippet, error)
}

// RetrieverConfig carries the result caps. The defaults (2 workspace,
// 2 property, 3 fallback) are MVP constants, not a ranking policy.
type RetrieverConfig struct {
	WorkspaceLimit int
	PropertyLimit  int
	FallbackLimit  int
}

type Retriever struct {
	kb  KnowledgeSearcher
	cfg RetrieverConfig
}

func NewRetriever(kb KnowledgeSearcher, cfg RetrieverConfig) *Retriever {
	if cfg.WorkspaceLimit <= 0 {
		cfg.WorkspaceLimit = 2
	}
	if cfg.PropertyLimit <= 0 {
		cfg.PropertyLimit = 2
	}
	if cfg.FallbackLimit <= 0 {
		cfg.FallbackLimit = 3
	}
	return &Retriever{kb: kb, cfg: cfg}
}

// Retrieve returns workspace-scoped matches first, then property-scoped
// ones. A failed lookup in either scope degrades to an empty
// contribution for that scope; retrieval never fails the pipeline.
func (r *Retriever) Retrieve(ctx context.Context, workspaceID uuid.UUID, propertyID *uuid.UUID, keywords []string) []domain.Snippet {
	if len(keywords) == 0 {
		// No signal to match on: generic workspace context, property
		// scope ignored.
		snippets, err := r.kb.WorkspaceDocuments(ctx, workspaceID, r.cfg.FallbackLimit)
		if err != nil {
			slog.Warn("workspace knowledge lookup failed", "workspace_id", workspaceID, "error", err)
			return nil
		}
		return snippets
	}

	var wsSnippets, propSnippets []domain.Snippet

	// The two scope lookups are independent; the merge order below is
	// fixed regardless of completion order.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snippets, err := r.kb.SearchWorkspaceDocuments(gctx, workspaceID, keywords, r.cfg.WorkspaceLimit)
		if err != nil {
			slog.Warn("workspace knowledge lookup failed", "workspace_id", workspaceID, "error", err)
			return nil
		}
		wsSnippets = snippets
		return nil
	})
	if propertyID != nil {
		propID := *propertyID
		g.Go(func() error {
			snippets, err := r.kb.SearchPropertyDocuments(gctx, workspaceID, propID, keywords, r.cfg.PropertyLimit)
			if err != nil {
				slog.Warn("property knowledge lookup failed", "property_id", propID, "error", err)
				return nil
			}
			propSnippets = snippets
			return nil
		})
	}
	_ = g.Wait()

	return append(wsSnippets, propSnippets...)
}
