package portfolio

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
	"github.com/edufolio/edufolio/internal/modules/sessions"
)

func TestHandleGetStockPortfolio(t *testing.T) {
	log := zerolog.Nop()
	store := sessions.NewStore(log)
	handler := NewHandler(store, log)

	session := store.Create(sessions.Session{
		Profile: domain.RiskProfile{Bucket: domain.BucketBalanced},
		StockPortfolio: domain.IndividualPortfolio{
			Holdings: []domain.StockHolding{
				{Ticker: "AAPL", Company: "Apple Inc.", Weight: 1.0, Shares: 10, Value: 1780},
			},
			TotalValue:     1780,
			ExpectedReturn: 7.0,
			Volatility:     12.5,
			SharpeRatio:    0.56,
		},
	})

	r := chi.NewRouter()
	r.Get("/api/portfolio/stocks/{sessionID}", handler.HandleGetStockPortfolio)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/stocks/"+session.ID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Bucket      domain.RiskBucket          `json:"bucket"`
		Portfolio   domain.IndividualPortfolio `json:"portfolio"`
		Explanation string                     `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, domain.BucketBalanced, resp.Bucket)
	require.Len(t, resp.Portfolio.Holdings, 1)
	assert.Equal(t, "AAPL", resp.Portfolio.Holdings[0].Ticker)
	assert.Contains(t, resp.Explanation, "a Balanced comfort level")

	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/stocks/nope", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
