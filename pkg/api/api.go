package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the bot's small HTTP surface: a health check and the
// landing pages the Stripe checkout redirects to.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Routes
	r.Get("/healthz", h.HandleHealth)
	r.Get("/success", h.HandleSuccess)
	r.Get("/cancel", h.HandleCancel)

	return r
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	respondWithHTML(w, "Thank you for subscribing to PsyAI! Head back to Discord and ask away.")
}

func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	respondWithHTML(w, "Checkout cancelled. You can restart it any time with the /sub command.")
}

// Helper functions for responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithHTML(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<html><body><h1>PsyAI</h1><p>" + message + "</p></body></html>"))
}
