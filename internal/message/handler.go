package message

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Kukaas/marketplace/internal/common"
)

// Handler exposes the contact form endpoint
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/listings/{id}/messages", h.Send).Methods(http.MethodPost)
}

// SendMessageRequest mirrors the contact form fields
type SendMessageRequest struct {
	BuyerEmail string `json:"buyer_email"`
	Message    string `json:"message"`
}

// Send - POST /api/listings/{id}/messages
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["id"]

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.SendMessage(r.Context(), SendMessageInput{
		ListingID:  listingID,
		BuyerEmail: req.BuyerEmail,
		Body:       req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			common.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrListingNotFound):
			common.WriteError(w, http.StatusNotFound, err.Error())
		default:
			// insert failures block the flow and are surfaced verbatim
			common.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	body := map[string]interface{}{
		"success": true,
		"outcome": result.Outcome.String(),
	}
	if result.Warning != "" {
		body["warning"] = result.Warning
	} else {
		body["message"] = "Message sent successfully!"
	}

	common.WriteJSON(w, http.StatusOK, body)
}
