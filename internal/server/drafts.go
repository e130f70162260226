package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/domain"
)

type generateDraftRequest struct {
	ThreadID string `json:"thread_id"`
}

type generateDraftResponse struct {
	Success bool          `json:"success"`
	Draft   *domain.Draft `json:"draft"`
}

func (s *Server) handleGenerateDraft(w http.ResponseWriter, r *http.Request) {
	var req generateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	if req.ThreadID == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: thread_id", "")
		return
	}
	threadID, err := uuid.Parse(req.ThreadID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid thread_id", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GenerateTimeout)
	defer cancel()

	draft, err := s.pipeline.Generate(ctx, threadID)
	if err != nil {
		if !isClientError(err) {
			s.notifier.Error(err, "generate-draft")
		}
		respondError(w, err)
		return
	}

	if draft.Escalated {
		reason := ""
		if draft.EscalationReason != nil {
			reason = *draft.EscalationReason
		}
		s.notifier.Escalation(draft.ThreadID.String(), reason)
	}

	writeJSON(w, http.StatusOK, generateDraftResponse{Success: true, Draft: draft})
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	drafts, err := s.drafts.ListDraftsByThread(r.Context(), threadID)
	if err != nil {
		respondError(w, err)
		return
	}
	if drafts == nil {
		drafts = []domain.Draft{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"drafts": drafts})
}
