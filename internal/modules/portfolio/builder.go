package portfolio

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/pkg/formulas"
)

// portfolioSizes caps how many names each bucket holds
var portfolioSizes = map[domain.RiskBucket]int{
	domain.BucketConservative: 5,
	domain.BucketBalanced:     6,
	domain.BucketGrowth:       7,
	domain.BucketAggressive:   8,
}

// satelliteMetrics are the published figures for the stock sleeve, fixed per
// bucket like the core portfolio's.
var satelliteMetrics = map[domain.RiskBucket]struct {
	expectedReturn float64
	volatility     float64
	sharpeRatio    float64
}{
	domain.BucketConservative: {expectedReturn: 3.5, volatility: 8.0, sharpeRatio: 0.44},
	domain.BucketBalanced:     {expectedReturn: 7.0, volatility: 12.5, sharpeRatio: 0.56},
	domain.BucketGrowth:       {expectedReturn: 10.5, volatility: 18.0, sharpeRatio: 0.58},
	domain.BucketAggressive:   {expectedReturn: 13.0, volatility: 22.0, sharpeRatio: 0.59},
}

// BuildInput carries the investor preferences that shape stock selection
type BuildInput struct {
	InvestmentAmount float64
	SectorPreference string // Exact sector name, or "any" / empty for no filter
	ESGFocus         bool
}

// Builder assembles the personalized stock portfolio that complements the
// ETF core.
type Builder struct {
	log zerolog.Logger
}

// NewBuilder creates a new portfolio builder
func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{
		log: log.With().Str("service", "portfolio").Logger(),
	}
}

// Build selects and sizes holdings from the candidate universe:
//  1. Filter by sector preference (exact match; "any" keeps everything)
//  2. Filter to ESG leaders when the investor asked for it
//  3. Sort best recommendation first, preserving candidate order on ties
//  4. Keep only names rated Highly Recommended or Recommended for the bucket
//  5. Truncate to the bucket's portfolio size
//
// Survivors are sized equally by budget; holdings whose price is missing are
// skipped rather than carried at zero. An empty result is a valid portfolio.
func (b *Builder) Build(candidates []domain.StockDetail, bucket domain.RiskBucket, input BuildInput) domain.IndividualPortfolio {
	filtered := make([]domain.StockDetail, 0, len(candidates))
	for _, c := range candidates {
		if input.SectorPreference != "" && input.SectorPreference != "any" && c.Sector != input.SectorPreference {
			continue
		}
		if input.ESGFocus && c.ESGRating != domain.ESGLeader {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ri := filtered[i].Recommendations[bucket].Category.Rank()
		rj := filtered[j].Recommendations[bucket].Category.Rank()
		return ri < rj
	})

	suitable := make([]domain.StockDetail, 0, len(filtered))
	for _, c := range filtered {
		switch c.Recommendations[bucket].Category {
		case domain.HighlyRecommended, domain.Recommended:
			suitable = append(suitable, c)
		}
	}

	size := portfolioSizes[bucket]
	if len(suitable) > size {
		suitable = suitable[:size]
	}

	if len(suitable) == 0 {
		b.log.Info().
			Str("bucket", string(bucket)).
			Str("sector", input.SectorPreference).
			Bool("esg", input.ESGFocus).
			Msg("No suitable candidates, returning empty portfolio")
		return domain.EmptyIndividualPortfolio()
	}

	equalWeight := 1.0 / float64(len(suitable))

	totalValue := 0.0
	holdings := make([]domain.StockHolding, 0, len(suitable))
	for _, stock := range suitable {
		if stock.Price <= 0 {
			b.log.Warn().
				Str("ticker", stock.Ticker).
				Msg("Skipping holding with no usable price")
			continue
		}

		budget := input.InvestmentAmount * equalWeight
		shares := formulas.Round2(budget / stock.Price)
		value := shares * stock.Price
		totalValue += value

		holdings = append(holdings, domain.StockHolding{
			Ticker:    stock.Ticker,
			Company:   stock.Company,
			Rationale: stock.Recommendations[bucket].Rationale,
			Shares:    shares,
			Value:     value,
		})
	}

	if len(holdings) == 0 {
		return domain.EmptyIndividualPortfolio()
	}

	for i := range holdings {
		if totalValue > 0 {
			holdings[i].Weight = holdings[i].Value / totalValue
		} else {
			holdings[i].Weight = equalWeight
		}
	}

	metrics := satelliteMetrics[bucket]

	return domain.IndividualPortfolio{
		Holdings:       holdings,
		TotalValue:     totalValue,
		ExpectedReturn: metrics.expectedReturn,
		Volatility:     metrics.volatility,
		SharpeRatio:    metrics.sharpeRatio,
	}
}
