package universe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/edufolio/edufolio/internal/clients/yahoo"
	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/internal/events"
	"github.com/edufolio/edufolio/internal/modules/charts"
	"github.com/edufolio/edufolio/internal/modules/scoring/scorers"
	"github.com/edufolio/edufolio/pkg/formulas"
)

// ErrNotFound is returned when a ticker is neither live nor in the fixtures
var ErrNotFound = errors.New("stock not found")

const (
	fixtureMonths         = 12
	defaultForecastGrowth = 0.05
	liveForecastRationale = "Projected path blends recent price history with revenue growth pulled from Yahoo Finance. Treat this as a directional scenario, not advice."
)

// MarketClient is the subset of the Yahoo client the universe needs
type MarketClient interface {
	GetQuotes(ctx context.Context, symbols []string) (map[string]*yahoo.QuoteSnapshot, error)
	GetQuoteSummary(ctx context.Context, symbol string) (*yahoo.SummarySnapshot, error)
	GetHistoricalPrices(ctx context.Context, symbol, rng, interval string) ([]yahoo.HistoricalPrice, error)
}

// Config controls live-data behaviour
type Config struct {
	LiveData bool
	QuoteTTL time.Duration
}

// Service owns the tracked stock universe. Every read walks the same chain:
// fresh cache, then live fetch, then stale cache, then fixtures. The fixtures
// are the terminal fallback so classroom sessions keep working offline.
type Service struct {
	cache  *QuoteCache
	client MarketClient
	charts *charts.Service
	scorer *scorers.RecommendationScorer
	events *events.Manager
	cfg    Config
	log    zerolog.Logger
	now    func() time.Time

	fixtureStocks  []domain.Stock
	fixtureDetails map[string]domain.StockDetail
}

// NewService creates a new universe service and materializes the fixture
// universe, including its deterministic chart series.
func NewService(
	cache *QuoteCache,
	client MarketClient,
	chartSvc *charts.Service,
	eventMgr *events.Manager,
	cfg Config,
	log zerolog.Logger,
) *Service {
	s := &Service{
		cache:  cache,
		client: client,
		charts: chartSvc,
		scorer: scorers.NewRecommendationScorer(),
		events: eventMgr,
		cfg:    cfg,
		log:    log.With().Str("service", "universe").Logger(),
		now:    time.Now,
	}
	s.buildFixtures()
	return s
}

// buildFixtures turns the authored seeds into full details with chart series
func (s *Service) buildFixtures() {
	now := s.now()

	s.fixtureStocks = make([]domain.Stock, 0, len(fixtureSeeds))
	s.fixtureDetails = make(map[string]domain.StockDetail, len(fixtureSeeds))

	for _, seed := range fixtureSeeds {
		detail := seed.StockDetail

		trend, volatility, rngSeed := seriesParams(detail.Ticker)
		closes := syntheticWalk(detail.Price, fixtureMonths, trend, volatility, rngSeed)

		historical := make([]domain.PricePoint, len(closes))
		for i, c := range closes {
			historical[i] = domain.PricePoint{
				Label: now.AddDate(0, i-fixtureMonths, 0).Format("Jan 06"),
				Price: formulas.Round2(c),
			}
		}

		detail.Historical = historical
		detail.Trend = s.charts.Trend(historical)
		detail.SeriesVolatility = s.charts.SeriesVolatility(historical)
		detail.SeriesSharpe = s.charts.SeriesSharpe(historical)

		lastPrice := historical[len(historical)-1].Price
		detail.Forecast = s.charts.Forecast(historical, lastPrice, trend*12, now)

		s.fixtureDetails[detail.Ticker] = detail
		s.fixtureStocks = append(s.fixtureStocks, detail.Stock)
	}
}

// TrackedSymbols returns the screener watchlist tickers
func (s *Service) TrackedSymbols() []string {
	symbols := make([]string, len(trackedTickers))
	for i, t := range trackedTickers {
		symbols[i] = t.Ticker
	}
	return symbols
}

// RankedStocks returns the screener universe. Live data is used when
// available; the fixture universe is the fallback of last resort.
func (s *Service) RankedStocks(ctx context.Context) []domain.Stock {
	symbols := s.TrackedSymbols()

	// Fresh cache first
	cached, err := s.cache.GetAll(symbols)
	if err != nil {
		s.log.Error().Err(err).Msg("Quote cache read failed")
	} else if s.allFresh(cached, symbols) {
		return s.stocksFromCache(cached, symbols)
	}

	// Live fetch
	if s.cfg.LiveData {
		quotes, err := s.fetchAndStore(ctx, symbols)
		if err == nil && len(quotes) > 0 {
			return s.stocksFromQuotes(quotes, symbols)
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("Live quote fetch failed, trying stale cache")
		}
	}

	// Stale cache beats fixtures as long as every symbol is present
	if len(cached) == len(symbols) {
		s.log.Warn().Msg("Serving stale quotes")
		return s.stocksFromCache(cached, symbols)
	}

	s.events.Emit(events.LiveDataFellBack, "universe", map[string]interface{}{
		"reason": "screener falling back to fixture universe",
	})
	return s.FixtureStocks()
}

// RefreshQuotes fetches the watchlist live and stores it in the cache.
// Used by the background refresh job and on-demand refreshes.
func (s *Service) RefreshQuotes(ctx context.Context) error {
	if !s.cfg.LiveData {
		return nil
	}

	quotes, err := s.fetchAndStore(ctx, s.TrackedSymbols())
	if err != nil {
		return err
	}

	s.events.Emit(events.QuotesRefreshed, "universe", map[string]interface{}{
		"symbols": len(quotes),
	})
	return nil
}

func (s *Service) fetchAndStore(ctx context.Context, symbols []string) (map[string]*yahoo.QuoteSnapshot, error) {
	quotes, err := s.client.GetQuotes(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("quote fetch failed: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quotes returned")
	}

	if err := s.cache.Put(quotes, s.now()); err != nil {
		// Serving the fetched data matters more than caching it
		s.log.Error().Err(err).Msg("Failed to cache quotes")
	}

	return quotes, nil
}

func (s *Service) allFresh(cached map[string]CachedQuote, symbols []string) bool {
	now := s.now()
	for _, symbol := range symbols {
		entry, ok := cached[symbol]
		if !ok || !entry.Fresh(s.cfg.QuoteTTL, now) {
			return false
		}
	}
	return len(symbols) > 0
}

func (s *Service) stocksFromCache(cached map[string]CachedQuote, symbols []string) []domain.Stock {
	stocks := make([]domain.Stock, 0, len(symbols))
	for _, symbol := range symbols {
		if entry, ok := cached[symbol]; ok {
			stocks = append(stocks, s.mapQuote(entry.Snapshot))
		}
	}
	return stocks
}

func (s *Service) stocksFromQuotes(quotes map[string]*yahoo.QuoteSnapshot, symbols []string) []domain.Stock {
	stocks := make([]domain.Stock, 0, len(quotes))
	for _, symbol := range symbols {
		if snap, ok := quotes[symbol]; ok {
			stocks = append(stocks, s.mapQuote(snap))
		}
	}
	return stocks
}

// mapQuote converts a quote snapshot into a scored screener row
func (s *Service) mapQuote(snap *yahoo.QuoteSnapshot) domain.Stock {
	pe := coalesce(snap.TrailingPE, snap.ForwardPE)
	beta := coalesce(snap.Beta, snap.Beta3Year)
	dividendYield := coalesce(snap.DividendYield, snap.TrailingAnnualDividendYield)

	tracked := s.trackedFor(snap.Symbol)

	sector := snap.Sector
	if sector == "" && tracked != nil {
		sector = tracked.Sector
	}
	if sector == "" {
		sector = "N/A"
	}

	company := snap.ShortName
	if company == "" && tracked != nil {
		company = tracked.Display
	}
	if company == "" {
		company = snap.Symbol
	}

	price := 0.0
	if snap.RegularMarketPrice != nil {
		price = *snap.RegularMarketPrice
	}
	change := 0.0
	if snap.RegularMarketChangePct != nil {
		change = *snap.RegularMarketChangePct
	}

	metrics := scorers.FundamentalMetrics{PE: pe, Beta: beta, DividendYield: dividendYield}

	return domain.Stock{
		Ticker:          snap.Symbol,
		Company:         company,
		Sector:          sector,
		Price:           price,
		Change:          change,
		Recommendations: s.scorer.RecommendAll(metrics),
	}
}

func (s *Service) trackedFor(symbol string) *TrackedTicker {
	for i := range trackedTickers {
		if trackedTickers[i].Ticker == symbol {
			return &trackedTickers[i]
		}
	}
	return nil
}

// StockDetail returns the full detail view for one ticker. The live path
// combines three upstream calls; any failure falls back to the fixture
// universe, and an unknown ticker yields ErrNotFound.
func (s *Service) StockDetail(ctx context.Context, ticker string) (*domain.StockDetail, error) {
	if s.cfg.LiveData {
		detail, err := s.liveDetail(ctx, ticker)
		if err == nil {
			return detail, nil
		}
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("Live detail lookup failed, trying fixtures")
	}

	if detail, ok := s.fixtureDetails[ticker]; ok {
		return &detail, nil
	}

	return nil, ErrNotFound
}

func (s *Service) liveDetail(ctx context.Context, ticker string) (*domain.StockDetail, error) {
	var (
		quote   *yahoo.QuoteSnapshot
		summary *yahoo.SummarySnapshot
		bars    []yahoo.HistoricalPrice
	)

	// The three upstream calls are independent, so run them together
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quotes, err := s.client.GetQuotes(gctx, []string{ticker})
		if err != nil {
			return err
		}
		var ok bool
		if quote, ok = quotes[ticker]; !ok {
			return fmt.Errorf("no quote found for %s", ticker)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summary, err = s.client.GetQuoteSummary(gctx, ticker)
		return err
	})
	g.Go(func() error {
		var err error
		bars, err = s.client.GetHistoricalPrices(gctx, ticker, "1y", "1mo")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	historical := s.charts.SeriesFromBars(bars)

	lastPrice := 0.0
	if quote.RegularMarketPrice != nil {
		lastPrice = *quote.RegularMarketPrice
	} else if len(historical) > 0 {
		lastPrice = historical[len(historical)-1].Price
	}

	// Key statistics are the primary source for detail-level fundamentals,
	// with the quote endpoint as backup
	pe := coalesce(summary.TrailingPE, summary.ForwardPE, quote.TrailingPE, quote.ForwardPE)
	beta := coalesce(quote.Beta, summary.Beta, summary.Beta3Year)
	dividendYield := coalesce(summary.DividendYield, quote.DividendYield)

	eps := 0.0
	if v := coalesce(summary.EPS, quote.EPS); v != nil {
		eps = *v
	}

	sector := summary.Sector
	if sector == "" {
		sector = quote.Sector
	}
	if sector == "" {
		sector = "N/A"
	}

	company := quote.ShortName
	if company == "" {
		company = ticker
	}

	profile := summary.LongSummary
	if profile == "" {
		profile = "No profile available from Yahoo Finance."
	}

	marketCap := quote.MarketCap
	if marketCap == nil {
		marketCap = summary.MarketCap
	}

	var dividendYieldPct *float64
	if dividendYield != nil {
		pct := formulas.Round2(*dividendYield * 100)
		dividendYieldPct = &pct
	}

	growth := defaultForecastGrowth
	if summary.RevenueGrowth != nil {
		growth = *summary.RevenueGrowth
	}

	metrics := scorers.FundamentalMetrics{PE: pe, Beta: beta, DividendYield: dividendYield}

	change := 0.0
	if quote.RegularMarketChangePct != nil {
		change = *quote.RegularMarketChangePct
	}

	detail := &domain.StockDetail{
		Stock: domain.Stock{
			Ticker:          quote.Symbol,
			Company:         company,
			Sector:          sector,
			Price:           lastPrice,
			Change:          change,
			Recommendations: s.scorer.RecommendAll(metrics),
		},
		Profile:           profile,
		MarketCap:         formatMarketCap(marketCap),
		PERatio:           pe,
		EPS:               eps,
		Beta:              beta,
		DividendYieldPct:  dividendYieldPct,
		News:              []domain.NewsItem{},
		Historical:        historical,
		Trend:             s.charts.Trend(historical),
		SeriesVolatility:  s.charts.SeriesVolatility(historical),
		SeriesSharpe:      s.charts.SeriesSharpe(historical),
		Forecast:          s.charts.Forecast(historical, lastPrice, growth, s.now()),
		ForecastRationale: liveForecastRationale,
	}

	return detail, nil
}

// FixtureStocks returns the authored stock universe in its canonical order
func (s *Service) FixtureStocks() []domain.Stock {
	stocks := make([]domain.Stock, len(s.fixtureStocks))
	copy(stocks, s.fixtureStocks)
	return stocks
}

// Candidates returns the full fixture details, which the satellite portfolio
// builder filters and ranks.
func (s *Service) Candidates() []domain.StockDetail {
	details := make([]domain.StockDetail, 0, len(fixtureSeeds))
	for _, seed := range fixtureSeeds {
		details = append(details, s.fixtureDetails[seed.Ticker])
	}
	return details
}

// News returns the market-wide headline feed
func (s *Service) News() []Article {
	articles := make([]Article, len(newsArticles))
	copy(articles, newsArticles)
	return articles
}

// coalesce returns the first non-nil value
func coalesce(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// formatMarketCap renders a raw market cap as a short human figure
func formatMarketCap(marketCap *int64) string {
	if marketCap == nil || *marketCap == 0 {
		return "N/A"
	}

	v := float64(*marketCap)
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.1fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	default:
		return fmt.Sprintf("%d", *marketCap)
	}
}
