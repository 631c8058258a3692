package yahoo

import "time"

// QuoteSnapshot holds the per-symbol fields the app cares about from the
// quote endpoint. Pointer fields distinguish "absent" from a real zero.
type QuoteSnapshot struct {
	Symbol             string   `json:"symbol"`
	ShortName          string   `json:"shortName"`
	Sector             string   `json:"sector,omitempty"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	RegularMarketChangePct *float64 `json:"regularMarketChangePercent"`
	TrailingPE         *float64 `json:"trailingPE"`
	ForwardPE          *float64 `json:"forwardPE"`
	EPS                *float64 `json:"epsTrailingTwelveMonths"`
	Beta               *float64 `json:"beta"`
	Beta3Year          *float64 `json:"beta3Year"`
	DividendYield      *float64 `json:"dividendYield"`
	TrailingAnnualDividendYield *float64 `json:"trailingAnnualDividendYield"`
	MarketCap          *int64   `json:"marketCap"`
}

// SummarySnapshot holds the fields extracted from the quoteSummary endpoint,
// which exposes profile and key-statistics data the quote endpoint lacks.
type SummarySnapshot struct {
	Symbol          string
	LongSummary     string
	Sector          string
	Industry        string
	TrailingPE      *float64
	ForwardPE       *float64
	Beta            *float64
	Beta3Year       *float64
	DividendYield   *float64
	TrailingDivYield *float64
	EPS             *float64
	MarketCap       *int64
	RevenueGrowth   *float64
}

// HistoricalPrice represents one bar of OHLCV data
type HistoricalPrice struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   int64
	AdjClose float64
}
