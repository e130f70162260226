package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hostops-ai/hostops/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

// respondError maps domain errors onto the HTTP taxonomy: invalid
// input and empty threads 400, missing entities 404, everything else
// 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, invalidDetail(err), "")
	case errors.Is(err, domain.ErrThreadEmpty):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	case isNotFound(err):
		writeError(w, http.StatusNotFound, err.Error(), "")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// isNotFound reports whether err maps to a 404.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrThreadNotFound) ||
		errors.Is(err, domain.ErrWorkspaceNotFound) ||
		errors.Is(err, domain.ErrPropertyNotFound) ||
		errors.Is(err, domain.ErrDocumentNotFound)
}

// isClientError reports whether err is the caller's fault, so ops
// notifications can skip it.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrThreadEmpty) ||
		isNotFound(err)
}

func invalidDetail(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
}
