package industries

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Handler serves the industry guide
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new industries handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "industries").Logger(),
	}
}

// HandleListIndustries returns every sector with its industries and
// per-bucket guidance.
func (h *Handler) HandleListIndustries(w http.ResponseWriter, r *http.Request) {
	sectors := Sectors()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"sectors": sectors,
		"count":   len(sectors),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
