package server

import (
	"encoding/json"
	"net/http"

	"github.com/hostops-ai/hostops/internal/service"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	settings, err := s.settings.Get(r.Context(), workspaceID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		EscalationKeywords []string       `json:"escalation_keywords"`
		AutoEscalate       bool           `json:"auto_escalate"`
		Settings           map[string]any `json:"settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	settings, err := s.settings.Update(r.Context(), service.UpdateSettingsInput{
		WorkspaceID:        workspaceID,
		EscalationKeywords: req.EscalationKeywords,
		AutoEscalate:       req.AutoEscalate,
		Settings:           req.Settings,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
