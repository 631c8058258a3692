package chat

import (
	"fmt"
	"strconv"

	"github.com/edufolio/edufolio/internal/domain"
)

// ExplainCorePortfolio describes the ETF core in plain language
func ExplainCorePortfolio(portfolio domain.Portfolio, bucket domain.RiskBucket) string {
	return fmt.Sprintf(
		"This portfolio targets a %s%% return for a %s investor using diversified building blocks. Holdings are sized to balance expected growth with drawdown control.",
		trimFloat(portfolio.ExpectedReturn), bucket,
	)
}

// ExplainStockPortfolio describes the stock sleeve in plain language
func ExplainStockPortfolio(bucket domain.RiskBucket) string {
	return fmt.Sprintf(
		"Your custom stock mix complements the ETF core by tilting toward names that match a %s comfort level. Each pick includes a plain-language rationale so you can understand why it is included.",
		bucket,
	)
}

// StressTestExplanation describes how the portfolio behaves in a severe
// downturn scenario.
func StressTestExplanation() string {
	return "A 2008-style shock would temporarily hit equities hard. Diversification across sectors and quality balance sheets helps, but expect volatility and size positions accordingly."
}

// ScreenerExplanation describes how the ranked stock list relates to the
// investor's bucket. An unknown bucket gets the generic text.
func ScreenerExplanation(bucket domain.RiskBucket) string {
	const base = "Live pricing and fundamentals are pulled directly from Yahoo Finance. Rankings lean on valuation, volatility, and dividend support to align with your comfort zone."
	switch bucket {
	case domain.BucketConservative:
		return base + " We favor lower-beta, dividend-friendly names and avoid stretched valuations."
	case domain.BucketBalanced:
		return base + " You will see a mix of steady compounders and select growth leaders with reasonable risk."
	case domain.BucketGrowth:
		return base + " Expect higher-beta innovators with solid revenue momentum, while avoiding extreme valuations."
	case domain.BucketAggressive:
		return base + " Volatility is acceptable when paired with upside; we still flag overextended valuations for caution."
	default:
		return base
	}
}

// trimFloat renders a float without trailing zeros, so 9.50 reads as "9.5"
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
