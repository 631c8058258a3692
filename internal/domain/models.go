package domain

// RiskBucket represents an investor risk category
type RiskBucket string

const (
	BucketConservative RiskBucket = "Conservative"
	BucketBalanced     RiskBucket = "Balanced"
	BucketGrowth       RiskBucket = "Growth"
	BucketAggressive   RiskBucket = "Aggressive"
)

// AllBuckets lists the risk buckets ordered from least to most risk appetite
var AllBuckets = []RiskBucket{
	BucketConservative,
	BucketBalanced,
	BucketGrowth,
	BucketAggressive,
}

// RecommendationCategory represents a suitability label for a stock within a bucket
type RecommendationCategory string

const (
	HighlyRecommended RecommendationCategory = "Highly Recommended"
	Recommended       RecommendationCategory = "Recommended"
	Neutral           RecommendationCategory = "Neutral"
	ConsiderCaution   RecommendationCategory = "Consider Caution"
	NotRecommended    RecommendationCategory = "Not Recommended"
)

// categoryRanks orders categories best-first (lower rank = better)
var categoryRanks = map[RecommendationCategory]int{
	HighlyRecommended: 0,
	Recommended:       1,
	Neutral:           2,
	ConsiderCaution:   3,
	NotRecommended:    4,
}

// Rank returns the position of the category in the best-first total order.
// Unknown categories sort last.
func (c RecommendationCategory) Rank() int {
	if rank, ok := categoryRanks[c]; ok {
		return rank
	}
	return len(categoryRanks)
}

// Recommendation is a suitability label with a plain-language rationale
type Recommendation struct {
	Category  RecommendationCategory `json:"recommendation"`
	Rationale string                 `json:"rationale"`
}

// RecommendationSet maps every risk bucket to its recommendation for a stock
type RecommendationSet map[RiskBucket]Recommendation

// RiskProfile is the result of scoring a questionnaire submission
type RiskProfile struct {
	Score            int                `json:"score"`
	Bucket           RiskBucket         `json:"bucket"`
	TargetAllocation map[string]float64 `json:"target_allocation"` // ETF ticker -> weight, sums to 1.0
}

// Portfolio is the core ETF portfolio with profile-level metrics
type Portfolio struct {
	Weights        map[string]float64 `json:"weights"`
	ExpectedReturn float64            `json:"expected_return"`
	Volatility     float64            `json:"volatility"`
	SharpeRatio    float64            `json:"sharpe_ratio"`
}

// ESGRating is a coarse sustainability tier
type ESGRating string

const (
	ESGLeader  ESGRating = "Leader"
	ESGAverage ESGRating = "Average"
	ESGLaggard ESGRating = "Laggard"
)

// Stock is a screener-level view of a tracked security
type Stock struct {
	Ticker          string            `json:"ticker"`
	Company         string            `json:"company"`
	Sector          string            `json:"sector"`
	Price           float64           `json:"price"`
	Change          float64           `json:"change"` // Percent change on the day
	Recommendations RecommendationSet `json:"recommendations"`
}

// NewsItem is a headline attached to a stock or the market feed
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

// PricePoint is a labelled close on a historical chart
type PricePoint struct {
	Label string  `json:"name"` // e.g. "Jan 24"
	Price float64 `json:"price"`
}

// ForecastPoint extends a chart with a projected path. Historical points carry
// Price, projected points carry Forecast; the other side is nil.
type ForecastPoint struct {
	Label    string   `json:"name"`
	Price    *float64 `json:"price"`
	Forecast *float64 `json:"forecast"`
}

// StockDetail is the full per-stock record for the detail view
type StockDetail struct {
	Stock
	Profile           string          `json:"profile"`
	MarketCap         string          `json:"market_cap"` // Formatted, e.g. "2.8T"
	PERatio           *float64        `json:"pe_ratio,omitempty"`
	EPS               float64         `json:"eps"`
	Beta              *float64        `json:"beta,omitempty"`
	DividendYieldPct  *float64        `json:"dividend_yield_pct,omitempty"` // As percent, e.g. 2.9
	ESGRating         ESGRating       `json:"esg_rating,omitempty"`
	News              []NewsItem      `json:"news"`
	Historical        []PricePoint    `json:"historical_data"`
	Trend             []PricePoint    `json:"trend,omitempty"` // Smoothed overlay of the historical series
	SeriesVolatility  float64         `json:"series_volatility"`
	SeriesSharpe      *float64        `json:"series_sharpe,omitempty"` // Nil when the series is too short to measure
	Forecast          []ForecastPoint `json:"forecast_data"`
	ForecastRationale string          `json:"forecast_rationale"`
}

// StockHolding is one position in a personalized stock portfolio
type StockHolding struct {
	Ticker    string  `json:"ticker"`
	Company   string  `json:"company"`
	Rationale string  `json:"rationale"`
	Shares    float64 `json:"shares"`
	Value     float64 `json:"value"`
	Weight    float64 `json:"weight"`
}

// IndividualPortfolio is the satellite portfolio of individual stocks.
// The empty portfolio (no holdings, zero metrics) is a valid terminal state
// when no candidate survives filtering.
type IndividualPortfolio struct {
	Holdings       []StockHolding `json:"holdings"`
	TotalValue     float64        `json:"total_value"`
	ExpectedReturn float64        `json:"expected_return"`
	Volatility     float64        `json:"volatility"`
	SharpeRatio    float64        `json:"sharpe_ratio"`
}

// EmptyIndividualPortfolio returns the canonical empty satellite portfolio
func EmptyIndividualPortfolio() IndividualPortfolio {
	return IndividualPortfolio{
		Holdings:   []StockHolding{},
		TotalValue: 0,
	}
}

// InvestorPreferences are the questionnaire answers that shape portfolio
// construction rather than the risk score.
type InvestorPreferences struct {
	InvestmentAmount float64 `json:"investment_amount"`
	SectorPreference string  `json:"sector_preference"` // Exact sector name, or "any"
	ESGFocus         bool    `json:"esg_focus"`
}

// AssetDescription documents one ETF building block of the core portfolio
type AssetDescription struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rationale   string `json:"rationale"`
}
