package server

import (
	"net/http"

	"github.com/hostops-ai/hostops/internal/service"
)

type inboundResponse struct {
	Success   bool   `json:"success"`
	ThreadID  string `json:"thread_id"`
	MessageID string `json:"message_id"`
}

// handleInboundEmail accepts SendGrid Inbound Parse posts
// (multipart/form-data or urlencoded).
func (s *Server) handleInboundEmail(w http.ResponseWriter, r *http.Request) {
	// 10 MB cap covers inline HTML bodies; attachments are ignored.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form payload", err.Error())
			return
		}
	}

	payload := service.InboundEmail{
		To:      r.FormValue("to"),
		From:    r.FormValue("from"),
		Subject: r.FormValue("subject"),
		Text:    r.FormValue("text"),
		HTML:    r.FormValue("html"),
		Headers: r.FormValue("headers"),
	}

	result, err := s.inbox.Ingest(r.Context(), payload)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inboundResponse{
		Success:   true,
		ThreadID:  result.ThreadID.String(),
		MessageID: result.MessageID.String(),
	})
}
