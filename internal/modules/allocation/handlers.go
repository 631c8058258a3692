package allocation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/modules/chat"
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

// Handler serves the ETF core portfolio for a session
type Handler struct {
	service *Service
	store   *sessions.Store
	log     zerolog.Logger
}

// NewHandler creates a new allocation handler
func NewHandler(service *Service, store *sessions.Store, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		store:   store,
		log:     log.With().Str("handler", "allocation").Logger(),
	}
}

// HandleGetCorePortfolio returns the session's ETF portfolio with the target
// allocation and the building-block descriptions.
func (h *Handler) HandleGetCorePortfolio(w http.ResponseWriter, r *http.Request) {
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
		"bucket":             session.Profile.Bucket,
		"target_allocation":  session.Profile.TargetAllocation,
		"portfolio":          session.CorePortfolio,
		"asset_descriptions": h.service.AssetDescriptions(),
		"explanation":        chat.ExplainCorePortfolio(session.CorePortfolio, session.Profile.Bucket),
		"stress_test":        chat.StressTestExplanation(),
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
