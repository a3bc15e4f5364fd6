package listing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Kukaas/marketplace/internal/common"
	"github.com/Kukaas/marketplace/internal/dbmysql"
)

// Handler wires the listing endpoints onto the API router
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/listings", h.List).Methods(http.MethodGet)
	r.HandleFunc("/listings", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/listings/{id}", h.Get).Methods(http.MethodGet)
}

// CreateListingRequest mirrors the composer form. Price is form text,
// the photo is an inline data URI.
type CreateListingRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	SellerEmail string `json:"seller_email"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type listingResponse struct {
	*dbmysql.Listing
	Posted string `json:"posted"`
}

func toResponse(l *dbmysql.Listing) listingResponse {
	return listingResponse{Listing: l, Posted: FormatPostedOn(l.CreatedAt)}
}

// List - GET /api/listings?category=&q=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")

	listings, err := h.service.Browse(r.Context(), category, search)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			common.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		common.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responses := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, toResponse(l))
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": responses})
}

// Get - GET /api/listings/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	listing, err := h.service.GetListing(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		common.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": toResponse(listing)})
}

// Create - POST /api/listings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	listing, err := h.service.CreateListing(r.Context(), CreateListingInput{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Location:    req.Location,
		SellerEmail: req.SellerEmail,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		var validationErr *common.ValidationError
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrUnknownCategory), errors.As(err, &validationErr):
			common.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			// datastore errors are surfaced verbatim so the user can resubmit
			common.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item added to marketplace!",
		"data":    toResponse(listing),
	})
}
