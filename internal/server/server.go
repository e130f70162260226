// Package server exposes the HTTP API: draft generation, the inbound
// email webhook, and the operator CRUD surface backing the dashboard.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/notify"
	"github.com/hostops-ai/hostops/internal/service"
)

// DraftGenerator runs one generation request end to end.
type DraftGenerator interface {
	Generate(ctx context.Context, threadID uuid.UUID) (*domain.Draft, error)
}

// DraftReader lists persisted drafts for review.
type DraftReader interface {
	ListDraftsByThread(ctx context.Context, threadID uuid.UUID) ([]domain.Draft, error)
}

// Inbox covers thread/message ingestion and the inbox views.
type Inbox interface {
	Ingest(ctx context.Context, payload service.InboundEmail) (*service.IngestResult, error)
	CreateThread(ctx context.Context, input service.CreateThreadInput) (*domain.Thread, error)
	AppendMessage(ctx context.Context, threadID uuid.UUID, role, body string) (*domain.Message, error)
	GetThread(ctx context.Context, threadID uuid.UUID) (*service.ThreadWithMessages, error)
	ListThreads(ctx context.Context, workspaceID uuid.UUID) ([]domain.Thread, error)
	ArchiveThread(ctx context.Context, threadID uuid.UUID) error
}

type Server struct {
	cfg        *config.Config
	pipeline   DraftGenerator
	drafts     DraftReader
	inbox      Inbox
	workspaces *service.WorkspaceService
	knowledge  *service.KnowledgeService
	settings   *service.SettingsService
	notifier   *notify.Notifier
}

type Deps struct {
	Cfg        *config.Config
	Pipeline   DraftGenerator
	Drafts     DraftReader
	Inbox      Inbox
	Workspaces *service.WorkspaceService
	Knowledge  *service.KnowledgeService
	Settings   *service.SettingsService
	Notifier   *notify.Notifier
}

func New(deps Deps) *Server {
	return &Server{
		cfg:        deps.Cfg,
		pipeline:   deps.Pipeline,
		drafts:     deps.Drafts,
		inbox:      deps.Inbox,
		workspaces: deps.Workspaces,
		knowledge:  deps.Knowledge,
		settings:   deps.Settings,
		notifier:   deps.Notifier,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/ai/generate-draft", s.handleGenerateDraft)
	mux.HandleFunc("POST /api/email/inbound", s.handleInboundEmail)

	mux.HandleFunc("POST /api/workspaces", s.handleCreateWorkspace)
	mux.HandleFunc("GET /api/workspaces/{id}", s.handleGetWorkspace)
	mux.HandleFunc("POST /api/workspaces/{id}/properties", s.handleCreateProperty)
	mux.HandleFunc("GET /api/workspaces/{id}/properties", s.handleListProperties)

	mux.HandleFunc("POST /api/workspaces/{id}/threads", s.handleCreateThread)
	mux.HandleFunc("GET /api/workspaces/{id}/threads", s.handleListThreads)
	mux.HandleFunc("GET /api/threads/{id}", s.handleGetThread)
	mux.HandleFunc("POST /api/threads/{id}/messages", s.handleAppendMessage)
	mux.HandleFunc("POST /api/threads/{id}/archive", s.handleArchiveThread)
	mux.HandleFunc("GET /api/threads/{id}/drafts", s.handleListDrafts)

	mux.HandleFunc("POST /api/workspaces/{id}/kb", s.handleCreateDocument)
	mux.HandleFunc("GET /api/workspaces/{id}/kb", s.handleListDocuments)
	mux.HandleFunc("PUT /api/kb/{id}", s.handleUpdateDocument)
	mux.HandleFunc("DELETE /api/kb/{id}", s.handleDeleteDocument)

	mux.HandleFunc("GET /api/workspaces/{id}/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/workspaces/{id}/settings", s.handleUpdateSettings)

	return chain(mux, recoverer, logging)
}

// ListenAndServe blocks until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// pathUUID parses the {id} path segment.
func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.Invalid("invalid id in path")
	}
	return id, nil
}
