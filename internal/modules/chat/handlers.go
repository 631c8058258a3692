package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

// Handler handles chat HTTP requests
type Handler struct {
	service *Service
	store   *sessions.Store
	log     zerolog.Logger
}

// NewHandler creates a new chat handler
func NewHandler(service *Service, store *sessions.Store, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		store:   store,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HandleChat answers one message. The session ID is optional; when present
// and valid, the reply includes the investor's per-bucket stance.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	var profile *domain.RiskProfile
	if req.SessionID != "" {
		if session, err := h.store.Get(req.SessionID); err == nil {
			profile = &session.Profile
		}
	}

	reply := h.service.Respond(r.Context(), req.Message, profile)

	h.writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
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
