package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
	"github.com/hostops-ai/hostops/internal/service"
)

func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		PropertyID *uuid.UUID `json:"property_id"`
		Subject    string     `json:"subject"`
		GuestEmail string     `json:"guest_email"`
		GuestName  string     `json:"guest_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	thread, err := s.inbox.CreateThread(r.Context(), service.CreateThreadInput{
		WorkspaceID: workspaceID,
		PropertyID:  req.PropertyID,
		Subject:     req.Subject,
		GuestEmail:  req.GuestEmail,
		GuestName:   req.GuestName,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, thread)
}

func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	threads, err := s.inbox.ListThreads(r.Context(), workspaceID)
	if err != nil {
		respondError(w, err)
		return
	}
	if threads == nil {
		threads = []domain.Thread{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"threads": threads})
}

func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	thread, err := s.inbox.GetThread(r.Context(), threadID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

func (s *Server) handleAppendMessage(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		Role string `json:"role"`
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	msg, err := s.inbox.AppendMessage(r.Context(), threadID, req.Role, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleArchiveThread(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.inbox.ArchiveThread(r.Context(), threadID); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
