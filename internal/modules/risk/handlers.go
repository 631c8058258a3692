package risk

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/events"
	"github.com/edufolio/edufolio/internal/modules/allocation"
	"github.com/edufolio/edufolio/internal/modules/portfolio"
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

// CandidateSource supplies the stock universe the satellite portfolio is
// built from.
type CandidateSource interface {
	Candidates() []domain.StockDetail
}

// Handler handles questionnaire and profile HTTP requests. Creating a
// profile is the one orchestration point: it scores the answers, derives the
// ETF core and stock sleeve, and stores the whole result as a session.
type Handler struct {
	engine     *Engine
	allocation *allocation.Service
	builder    *portfolio.Builder
	candidates CandidateSource
	store      *sessions.Store
	events     *events.Manager
	log        zerolog.Logger
}

// NewHandler creates a new risk handler
func NewHandler(
	engine *Engine,
	allocationSvc *allocation.Service,
	builder *portfolio.Builder,
	candidates CandidateSource,
	store *sessions.Store,
	eventMgr *events.Manager,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		engine:     engine,
		allocation: allocationSvc,
		builder:    builder,
		candidates: candidates,
		store:      store,
		events:     eventMgr,
		log:        log.With().Str("handler", "risk").Logger(),
	}
}

// HandleGetQuestionnaire returns the questionnaire definition
func (h *Handler) HandleGetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": Questions(),
	})
}

// createProfileRequest is the questionnaire submission payload
type createProfileRequest struct {
	Answers AnswerSet `json:"answers"`
}

// HandleCreateProfile scores a questionnaire submission and builds both
// portfolios. Each submission creates a fresh session, so retaking the
// questionnaire replaces the investor's working profile.
func (h *Handler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Answers) == 0 {
		h.writeError(w, http.StatusBadRequest, "Answers are required")
		return
	}

	profile, prefs := h.engine.Evaluate(req.Answers)
	profile.TargetAllocation = h.allocation.TargetAllocation(profile.Bucket)

	corePortfolio := h.allocation.CorePortfolio(profile.Bucket)
	stockPortfolio := h.builder.Build(h.candidates.Candidates(), profile.Bucket, portfolio.BuildInput{
		InvestmentAmount: prefs.InvestmentAmount,
		SectorPreference: prefs.SectorPreference,
		ESGFocus:         prefs.ESGFocus,
	})

	session := h.store.Create(sessions.Session{
		Profile:        profile,
		Preferences:    prefs,
		CorePortfolio:  corePortfolio,
		StockPortfolio: stockPortfolio,
	})

	h.events.Emit(events.ProfileCreated, "risk", map[string]interface{}{
		"session_id": session.ID,
		"score":      profile.Score,
		"bucket":     string(profile.Bucket),
	})
	h.events.Emit(events.PortfolioBuilt, "risk", map[string]interface{}{
		"session_id": session.ID,
		"holdings":   len(stockPortfolio.Holdings),
	})

	h.writeJSON(w, http.StatusCreated, session)
}

// HandleGetProfile returns an existing session
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, session)
}

// HandleAcceptDisclaimer records that the investor acknowledged the
// educational disclaimer.
func (h *Handler) HandleAcceptDisclaimer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		h.writeError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	session, err := h.store.AcceptDisclaimer(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Unknown session")
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.events.Emit(events.DisclaimerAccept, "risk", map[string]interface{}{
		"session_id": session.ID,
	})

	h.writeJSON(w, http.StatusOK, session)
}

func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) (*sessions.Session, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		h.writeError(w, http.StatusBadRequest, "Session ID is required")
		return nil, false
	}

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Unknown session")
			return nil, false
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}

	return session, true
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
