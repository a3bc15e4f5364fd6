package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Kukaas/marketplace/internal/listing"
	"github.com/Kukaas/marketplace/internal/mail"
	"github.com/Kukaas/marketplace/internal/message"
)

// NewRouter assembles the full API surface. All JSON endpoints live
// under /api; health stays at the root for probes.
func NewRouter(
	listingHandler *listing.Handler,
	messageHandler *message.Handler,
	mailHandler *mail.Handler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// preflight requests must match a route for the middleware to run;
	// CORSMiddleware answers them before this handler is reached
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	router.HandleFunc("/health", health).Methods(http.MethodGet)

	apiRouter := router.PathPrefix("/api").Subrouter()
	listingHandler.RegisterRoutes(apiRouter)
	messageHandler.RegisterRoutes(apiRouter)
	mailHandler.RegisterRoutes(apiRouter)

	return router
}

func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("✅ Marketplace API is healthy"))
}
