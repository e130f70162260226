package server

import (
	"encoding/json"
	"net/http"

	"github.com/hostops-ai/hostops/internal/service"
)

func (s *Server) handleCreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	workspace, err := s.workspaces.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, workspace)
}

func (s *Server) handleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	workspace, err := s.workspaces.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workspace)
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		AirbnbID    string `json:"airbnb_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		PhotoURL    string `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	property, err := s.workspaces.CreateProperty(r.Context(), service.CreatePropertyInput{
		WorkspaceID: workspaceID,
		AirbnbID:    req.AirbnbID,
		Title:       req.Title,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathUUID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	properties, err := s.workspaces.ListProperties(r.Context(), workspaceID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"properties": properties})
}
