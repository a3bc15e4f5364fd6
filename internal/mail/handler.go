package mail

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Kukaas/marketplace/internal/common"
)

// Handler exposes the mail dispatcher as its own endpoint, kept for
// callers that dispatch emails directly rather than through the
// contact flow.
type Handler struct {
	notifier common.MessageNotifier
}

func NewHandler(notifier common.MessageNotifier) *Handler {
	return &Handler{notifier: notifier}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/send-email-message", h.SendEmailMessage)
}

// SendEmailMessage - POST /api/send-email-message
func (h *Handler) SendEmailMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var payload common.MessageEmailPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// the caller gets no detail on which of the two sends failed
	if err := h.notifier.NotifyMessage(r.Context(), payload); err != nil {
		log.Printf("Email dispatch failed: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "Failed to send email message")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
