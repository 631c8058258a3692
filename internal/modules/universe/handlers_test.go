package universe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufolio/edufolio/internal/domain"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	handler := NewHandler(newTestService(t, &fakeClient{}, false), zerolog.Nop())

	r := chi.NewRouter()
	r.Get("/api/screener", handler.HandleScreener)
	r.Get("/api/stocks/{ticker}", handler.HandleStockDetail)
	r.Get("/api/news", handler.HandleNews)
	return r
}

func get(t *testing.T, router *chi.Mux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleScreener(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/screener")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Stocks      []domain.Stock `json:"stocks"`
		Count       int            `json:"count"`
		Explanation string         `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 20, resp.Count)
	assert.Len(t, resp.Stocks, 20)
	assert.Contains(t, resp.Explanation, "Yahoo Finance")
	assert.NotContains(t, resp.Explanation, "lower-beta", "no bucket means the generic text")
}

func TestHandleScreenerBucketExplanation(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/screener?bucket=Conservative")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Explanation string `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Explanation, "lower-beta, dividend-friendly")
}

func TestHandleStockDetail(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/stocks/aapl")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail domain.StockDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "AAPL", detail.Ticker, "ticker lookup is case-insensitive")

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/stocks/ZZZZ").Code)
}

func TestHandleNews(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/news")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Articles []Article `json:"articles"`
		Count    int       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
	for _, a := range resp.Articles {
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Source)
	}
}
