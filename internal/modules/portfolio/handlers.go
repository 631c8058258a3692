package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/modules/chat"
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

// Handler serves the personalized stock portfolio for a session
type Handler struct {
	store *sessions.Store
	log   zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(store *sessions.Store, log zerolog.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetStockPortfolio returns the stock sleeve built for the session
func (h *Handler) HandleGetStockPortfolio(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		h.writeError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Unknown session")
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"bucket":      session.Profile.Bucket,
		"portfolio":   session.StockPortfolio,
		"explanation": chat.ExplainStockPortfolio(session.Profile.Bucket),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
