package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/service"
)

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		ScopeType string     `json:"scope_type"`
		ScopeID   *uuid.UUID `json:"scope_id"`
		Title     string     `json:"title"`
		Content   string     `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	if req.ScopeType == "" {
		req.ScopeType = domain.ScopeWorkspace
	}
	doc, err := s.knowledge.Create(r.Context(), service.CreateDocumentInput{
		WorkspaceID: workspaceID,
		ScopeType:   req.ScopeType,
		ScopeID:     req.ScopeID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	docs, err := s.knowledge.List(r.Context(), workspaceID)
	if err != nil {
		respondError(w, err)
		return
	}
	if docs == nil {
		docs = []domain.KBDocument{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	doc, err := s.knowledge.Update(r.Context(), id, req.Title, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.knowledge.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
