package risk

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/events"
	"github.com/edufolio/edufolio/internal/modules/allocation"
	"github.com/edufolio/edufolio/internal/modules/portfolio"
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

type stubCandidates struct{ details []domain.StockDetail }

func (s stubCandidates) Candidates() []domain.StockDetail { return s.details }

func testCandidates() []domain.StockDetail {
	set := func(category domain.RecommendationCategory) domain.RecommendationSet {
		recs := make(domain.RecommendationSet)
		for _, b := range domain.AllBuckets {
			recs[b] = domain.Recommendation{Category: category, Rationale: "test rationale"}
		}
		return recs
	}

	return []domain.StockDetail{
		{Stock: domain.Stock{Ticker: "AAA", Company: "AAA Inc.", Sector: "Technology", Price: 100, Recommendations: set(domain.HighlyRecommended)}},
		{Stock: domain.Stock{Ticker: "BBB", Company: "BBB Inc.", Sector: "Healthcare", Price: 50, Recommendations: set(domain.Recommended)}},
		{Stock: domain.Stock{Ticker: "CCC", Company: "CCC Inc.", Sector: "Energy", Price: 25, Recommendations: set(domain.NotRecommended)}},
	}
}

func newTestRouter(t *testing.T) (*chi.Mux, *sessions.Store) {
	t.Helper()

	log := zerolog.Nop()
	store := sessions.NewStore(log)
	handler := NewHandler(
		NewEngine(log),
		allocation.NewService(log),
		portfolio.NewBuilder(log),
		stubCandidates{details: testCandidates()},
		store,
		events.NewManager(log),
		log,
	)

	r := chi.NewRouter()
	r.Get("/api/questionnaire", handler.HandleGetQuestionnaire)
	r.Post("/api/profile", handler.HandleCreateProfile)
	r.Get("/api/profile/{sessionID}", handler.HandleGetProfile)
	r.Post("/api/profile/{sessionID}/disclaimer", handler.HandleAcceptDisclaimer)

	return r, store
}

func postProfile(t *testing.T, router *chi.Mux, answers map[string]interface{}) sessions.Session {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"answers": answers})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/profile", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session sessions.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	return session
}

func TestHandleGetQuestionnaire(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/questionnaire", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Questions []Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 11)
}

func TestHandleCreateProfile(t *testing.T) {
	router, _ := newTestRouter(t)

	session := postProfile(t, router, map[string]interface{}{
		"horizon":            40,
		"drawdownTolerance":  40,
		"incomeStability":    20,
		"experience":         20,
		"goals":              30,
		"volatilityReaction": 25,
		"liquidity":          20,
		"investmentAmount":   "10000",
		"sectorPreference":   "any",
		"esgFocus":           0,
	})

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 195, session.Profile.Score)
	assert.Equal(t, domain.BucketAggressive, session.Profile.Bucket)
	assert.InDelta(t, 0.60, session.Profile.TargetAllocation["VTI"], 1e-9)
	assert.Equal(t, 9.5, session.CorePortfolio.ExpectedReturn)

	// AAA and BBB are investable, CCC is not recommended
	require.Len(t, session.StockPortfolio.Holdings, 2)
	assert.Equal(t, "AAA", session.StockPortfolio.Holdings[0].Ticker)
	assert.Equal(t, 10000.0, session.StockPortfolio.TotalValue)
	assert.False(t, session.DisclaimerAccepted)
}

func TestHandleCreateProfileConservative(t *testing.T) {
	router, _ := newTestRouter(t)

	session := postProfile(t, router, map[string]interface{}{
		"horizon":          0,
		"goals":            0,
		"investmentAmount": "5000",
	})

	assert.Equal(t, 0, session.Profile.Score)
	assert.Equal(t, domain.BucketConservative, session.Profile.Bucket)
	assert.InDelta(t, 0.45, session.Profile.TargetAllocation["BND"], 1e-9)
	assert.Equal(t, 4.5, session.CorePortfolio.ExpectedReturn)
}

func TestHandleCreateProfileSectorFilterEmptiesPortfolio(t *testing.T) {
	router, _ := newTestRouter(t)

	session := postProfile(t, router, map[string]interface{}{
		"horizon":          15,
		"sectorPreference": "Utilities",
		"investmentAmount": "5000",
	})

	assert.NotNil(t, session.StockPortfolio.Holdings)
	assert.Empty(t, session.StockPortfolio.Holdings)
	assert.Equal(t, 0.0, session.StockPortfolio.TotalValue)
}

func TestHandleCreateProfileValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/profile", bytes.NewReader([]byte(`{"answers": {}}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/profile", bytes.NewReader([]byte(`not json`)))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetProfile(t *testing.T) {
	router, _ := newTestRouter(t)

	created := postProfile(t, router, map[string]interface{}{"horizon": 30, "goals": 30})

	req := httptest.NewRequest(http.MethodGet, "/api/profile/"+created.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var fetched sessions.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Profile.Bucket, fetched.Profile.Bucket)
}

func TestHandleGetProfileUnknown(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profile/not-a-session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAcceptDisclaimer(t *testing.T) {
	router, _ := newTestRouter(t)

	created := postProfile(t, router, map[string]interface{}{"horizon": 15})

	req := httptest.NewRequest(http.MethodPost, "/api/profile/"+created.ID+"/disclaimer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var session sessions.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.True(t, session.DisclaimerAccepted)

	req = httptest.NewRequest(http.MethodPost, "/api/profile/nope/disclaimer", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRetakeCreatesNewSession(t *testing.T) {
	router, store := newTestRouter(t)

	first := postProfile(t, router, map[string]interface{}{"horizon": 0})
	second := postProfile(t, router, map[string]interface{}{"horizon": 40, "drawdownTolerance": 40, "goals": 30, "volatilityReaction": 25, "liquidity": 20})

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.Count())
	assert.NotEqual(t, first.Profile.Bucket, second.Profile.Bucket)
}
