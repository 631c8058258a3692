package universe

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/modules/chat"
)

// Handler handles screener, stock detail, and news HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new universe handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "universe").Logger(),
	}
}

// HandleScreener returns the ranked stock universe. The optional bucket
// query parameter tailors the explanation text.
func (h *Handler) HandleScreener(w http.ResponseWriter, r *http.Request) {
	stocks := h.service.RankedStocks(r.Context())
	bucket := domain.RiskBucket(r.URL.Query().Get("bucket"))

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"stocks":      stocks,
		"count":       len(stocks),
		"explanation": chat.ScreenerExplanation(bucket),
	})
}

// HandleStockDetail returns the full detail view for one ticker
func (h *Handler) HandleStockDetail(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "ticker")))
	if ticker == "" {
		h.writeError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	detail, err := h.service.StockDetail(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Unknown ticker: "+ticker)
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

// HandleNews returns the market-wide headline feed
func (h *Handler) HandleNews(w http.ResponseWriter, r *http.Request) {
	articles := h.service.News()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
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
