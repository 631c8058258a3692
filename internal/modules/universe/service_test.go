package universe

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufolio/edufolio/internal/clients/yahoo"
	"github.com/edufolio/edufolio/internal/database"
	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/events"
	"github.com/edufolio/edufolio/internal/modules/charts"
)

// fakeClient scripts the upstream responses for tests
type fakeClient struct {
	quotes     map[string]*yahoo.QuoteSnapshot
	quotesErr  error
	quoteCalls int

	summary    *yahoo.SummarySnapshot
	summaryErr error

	bars    []yahoo.HistoricalPrice
	barsErr error
}

func (f *fakeClient) GetQuotes(ctx context.Context, symbols []string) (map[string]*yahoo.QuoteSnapshot, error) {
	f.quoteCalls++
	if f.quotesErr != nil {
		return nil, f.quotesErr
	}
	result := make(map[string]*yahoo.QuoteSnapshot)
	for _, s := range symbols {
		if q, ok := f.quotes[s]; ok {
			result[s] = q
		}
	}
	return result, nil
}

func (f *fakeClient) GetQuoteSummary(ctx context.Context, symbol string) (*yahoo.SummarySnapshot, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeClient) GetHistoricalPrices(ctx context.Context, symbol, rng, interval string) ([]yahoo.HistoricalPrice, error) {
	if f.barsErr != nil {
		return nil, f.barsErr
	}
	return f.bars, nil
}

func newTestService(t *testing.T, client MarketClient, live bool) *Service {
	t.Helper()

	db, err := database.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	log := zerolog.Nop()
	return NewService(
		NewQuoteCache(db, log),
		client,
		charts.NewService(log),
		events.NewManager(log),
		Config{LiveData: live, QuoteTTL: 15 * time.Minute},
		log,
	)
}

func liveQuotes() map[string]*yahoo.QuoteSnapshot {
	quotes := make(map[string]*yahoo.QuoteSnapshot)
	for _, t := range trackedTickers {
		price := 100.0
		change := 0.5
		pe := 20.0
		quotes[t.Ticker] = &yahoo.QuoteSnapshot{
			Symbol:                 t.Ticker,
			ShortName:              t.Display,
			RegularMarketPrice:     &price,
			RegularMarketChangePct: &change,
			TrailingPE:             &pe,
		}
	}
	return quotes
}

func TestFixtureUniverse(t *testing.T) {
	svc := newTestService(t, &fakeClient{}, false)

	stocks := svc.FixtureStocks()
	assert.Len(t, stocks, 20)

	for _, stock := range stocks {
		assert.Len(t, stock.Recommendations, 4, "%s should be graded for every bucket", stock.Ticker)
	}

	details := svc.Candidates()
	require.Len(t, details, 20)

	for _, d := range details {
		assert.Len(t, d.Historical, 12, "%s should have a year of monthly closes", d.Ticker)
		assert.Len(t, d.Forecast, 18, "%s forecast extends the series by six months", d.Ticker)
		assert.NotEmpty(t, d.Trend, d.Ticker)
		assert.NotNil(t, d.SeriesSharpe, "%s has a full year to measure against", d.Ticker)
		assert.NotEmpty(t, d.Profile, d.Ticker)
		for _, p := range d.Historical {
			assert.GreaterOrEqual(t, p.Price, 0.01)
		}
	}
}

func TestFixtureSingleLetterTicker(t *testing.T) {
	svc := newTestService(t, &fakeClient{}, false)

	detail, err := svc.StockDetail(context.Background(), "V")
	require.NoError(t, err)

	assert.Equal(t, "V", detail.Ticker)
	assert.Len(t, detail.Historical, 12)
	assert.NotEmpty(t, detail.Trend)
}

func TestFixtureSeriesDeterministic(t *testing.T) {
	a := newTestService(t, &fakeClient{}, false)
	b := newTestService(t, &fakeClient{}, false)

	da, err := a.StockDetail(context.Background(), "AAPL")
	require.NoError(t, err)
	db, err := b.StockDetail(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, da.Historical, db.Historical, "fixture series must be stable across instances")
}

func TestFixtureBoeingHasNoPERatio(t *testing.T) {
	svc := newTestService(t, &fakeClient{}, false)

	detail, err := svc.StockDetail(context.Background(), "BA")
	require.NoError(t, err)

	assert.Nil(t, detail.PERatio, "negative earnings mean no meaningful P/E")
	assert.Equal(t, -8.30, detail.EPS)
}

func TestRankedStocksLive(t *testing.T) {
	client := &fakeClient{quotes: liveQuotes()}
	svc := newTestService(t, client, true)

	stocks := svc.RankedStocks(context.Background())

	require.Len(t, stocks, 10)
	assert.Equal(t, "AAPL", stocks[0].Ticker)
	assert.Equal(t, "Apple Inc.", stocks[0].Company)
	assert.Equal(t, 100.0, stocks[0].Price)
	assert.Len(t, stocks[0].Recommendations, 4)
	// Sector missing from the quote falls back to the watchlist entry
	assert.Equal(t, "Technology", stocks[0].Sector)
}

func TestRankedStocksUsesFreshCache(t *testing.T) {
	client := &fakeClient{quotes: liveQuotes()}
	svc := newTestService(t, client, true)

	first := svc.RankedStocks(context.Background())
	require.Len(t, first, 10)
	assert.Equal(t, 1, client.quoteCalls)

	second := svc.RankedStocks(context.Background())
	require.Len(t, second, 10)
	assert.Equal(t, 1, client.quoteCalls, "fresh cache should prevent a refetch")
}

func TestRankedStocksStaleCacheBeatsFixtures(t *testing.T) {
	client := &fakeClient{quotes: liveQuotes()}
	svc := newTestService(t, client, true)

	// Warm the cache, then age it past the TTL and break the upstream
	require.Len(t, svc.RankedStocks(context.Background()), 10)
	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	client.quotesErr = fmt.Errorf("upstream down")

	stocks := svc.RankedStocks(context.Background())

	require.Len(t, stocks, 10, "stale cache should still serve the watchlist")
	assert.Equal(t, "AAPL", stocks[0].Ticker)
}

func TestRankedStocksFallsBackToFixtures(t *testing.T) {
	client := &fakeClient{quotesErr: fmt.Errorf("upstream down")}
	svc := newTestService(t, client, true)

	stocks := svc.RankedStocks(context.Background())

	assert.Len(t, stocks, 20, "empty cache and dead upstream leave only fixtures")
}

func TestRankedStocksLiveDisabled(t *testing.T) {
	client := &fakeClient{quotes: liveQuotes()}
	svc := newTestService(t, client, false)

	stocks := svc.RankedStocks(context.Background())

	assert.Len(t, stocks, 20)
	assert.Equal(t, 0, client.quoteCalls, "classroom mode never calls upstream")
}

func TestStockDetailLive(t *testing.T) {
	price := 172.25
	change := 1.5
	quotePE := 28.5
	beta := 1.2
	marketCap := int64(2_800_000_000_000)
	divYield := 0.005
	growth := 0.12
	eps := 6.04

	client := &fakeClient{
		quotes: map[string]*yahoo.QuoteSnapshot{
			"AAPL": {
				Symbol:                 "AAPL",
				ShortName:              "Apple Inc.",
				RegularMarketPrice:     &price,
				RegularMarketChangePct: &change,
				TrailingPE:             &quotePE,
				Beta:                   &beta,
				MarketCap:              &marketCap,
				EPS:                    &eps,
			},
		},
		summary: &yahoo.SummarySnapshot{
			Symbol:        "AAPL",
			LongSummary:   "Apple designs consumer electronics.",
			Sector:        "Technology",
			DividendYield: &divYield,
			RevenueGrowth: &growth,
		},
		bars: []yahoo.HistoricalPrice{
			{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Close: 150},
			{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Close: 160},
			{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Close: 170},
		},
	}
	svc := newTestService(t, client, true)

	detail, err := svc.StockDetail(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", detail.Ticker)
	assert.Equal(t, "Apple Inc.", detail.Company)
	assert.Equal(t, "Technology", detail.Sector)
	assert.Equal(t, 172.25, detail.Price)
	assert.Equal(t, "2.8T", detail.MarketCap)
	assert.Equal(t, "Apple designs consumer electronics.", detail.Profile)

	require.NotNil(t, detail.PERatio)
	assert.Equal(t, 28.5, *detail.PERatio)
	require.NotNil(t, detail.Beta)
	assert.Equal(t, 1.2, *detail.Beta)
	require.NotNil(t, detail.DividendYieldPct)
	assert.Equal(t, 0.5, *detail.DividendYieldPct)

	assert.Len(t, detail.Historical, 3)
	assert.NotNil(t, detail.SeriesSharpe)
	assert.Len(t, detail.Forecast, 9, "three historical plus six projected points")
	assert.Len(t, detail.Recommendations, 4)
	assert.Empty(t, detail.ESGRating, "live details carry no ESG rating")
}

func TestStockDetailFallsBackToFixture(t *testing.T) {
	client := &fakeClient{quotesErr: fmt.Errorf("upstream down")}
	svc := newTestService(t, client, true)

	detail, err := svc.StockDetail(context.Background(), "MSFT")
	require.NoError(t, err)

	assert.Equal(t, "Microsoft Corp.", detail.Company)
	assert.Equal(t, domain.ESGLeader, detail.ESGRating)
}

func TestStockDetailUnknownTicker(t *testing.T) {
	client := &fakeClient{quotesErr: fmt.Errorf("upstream down")}
	svc := newTestService(t, client, true)

	_, err := svc.StockDetail(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefreshQuotes(t *testing.T) {
	client := &fakeClient{quotes: liveQuotes()}
	svc := newTestService(t, client, true)

	require.NoError(t, svc.RefreshQuotes(context.Background()))
	assert.Equal(t, 1, client.quoteCalls)

	// The refreshed batch counts as fresh for subsequent reads
	stocks := svc.RankedStocks(context.Background())
	require.Len(t, stocks, 10)
	assert.Equal(t, 1, client.quoteCalls)
}

func TestQuoteCacheRoundTrip(t *testing.T) {
	db, err := database.NewInMemory()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	cache := NewQuoteCache(db, zerolog.Nop())

	price := 99.5
	fetchedAt := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, cache.Put(map[string]*yahoo.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", ShortName: "Apple Inc.", RegularMarketPrice: &price},
	}, fetchedAt))

	cached, err := cache.Get("AAPL")
	require.NoError(t, err)
	require.NotNil(t, cached)

	assert.Equal(t, "AAPL", cached.Snapshot.Symbol)
	require.NotNil(t, cached.Snapshot.RegularMarketPrice)
	assert.Equal(t, 99.5, *cached.Snapshot.RegularMarketPrice)
	assert.True(t, cached.FetchedAt.Equal(fetchedAt))

	missing, err := cache.Get("ZZZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFormatMarketCap(t *testing.T) {
	billion := int64(2_500_000_000)
	trillion := int64(1_100_000_000_000)
	million := int64(45_000_000)
	small := int64(999)

	assert.Equal(t, "N/A", formatMarketCap(nil))
	assert.Equal(t, "2.5B", formatMarketCap(&billion))
	assert.Equal(t, "1.1T", formatMarketCap(&trillion))
	assert.Equal(t, "45.0M", formatMarketCap(&million))
	assert.Equal(t, "999", formatMarketCap(&small))
}
