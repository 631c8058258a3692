package allocation

import "github.com/edufolio/edufolio/internal/domain"

// targetAllocations maps each risk bucket to its ETF target weights.
// Weights within a bucket sum to 1.0; a zero weight keeps the asset visible
// in the breakdown while excluding it from the mix.
var targetAllocations = map[domain.RiskBucket]map[string]float64{
	domain.BucketConservative: {"VTI": 0.20, "VXUS": 0.15, "BND": 0.45, "TIPS": 0.10, "VNQ": 0.05, "SGOV": 0.05},
	domain.BucketBalanced:     {"VTI": 0.35, "VXUS": 0.20, "BND": 0.30, "GLD": 0.03, "VNQ": 0.07, "SGOV": 0.05},
	domain.BucketGrowth:       {"VTI": 0.50, "VXUS": 0.25, "BND": 0.15, "GLD": 0.03, "VNQ": 0.07, "SGOV": 0.00},
	domain.BucketAggressive:   {"VTI": 0.60, "VXUS": 0.30, "BND": 0.05, "GLD": 0.02, "VNQ": 0.03, "SGOV": 0.00},
}

// coreMetrics are the published portfolio-level figures per bucket. They are
// fixed model outputs, not computed from holdings, so the teaching material
// stays consistent between sessions.
var coreMetrics = map[domain.RiskBucket]struct {
	expectedReturn float64
	volatility     float64
	sharpeRatio    float64
}{
	domain.BucketConservative: {expectedReturn: 4.5, volatility: 6.0, sharpeRatio: 0.58},
	domain.BucketBalanced:     {expectedReturn: 6.2, volatility: 9.5, sharpeRatio: 0.65},
	domain.BucketGrowth:       {expectedReturn: 8.1, volatility: 13.5, sharpeRatio: 0.70},
	domain.BucketAggressive:   {expectedReturn: 9.5, volatility: 16.0, sharpeRatio: 0.72},
}

// assetOrder fixes the presentation order of the ETF building blocks
var assetOrder = []string{"VTI", "VXUS", "BND", "TIPS", "GLD", "VNQ", "SGOV"}

var assetDescriptions = map[string]domain.AssetDescription{
	"VTI": {
		Ticker:      "VTI",
		Name:        "Vanguard Total Stock Market ETF",
		Description: "Provides exposure to the entire U.S. equity market, including small-, mid-, and large-cap growth and value stocks. It is a highly diversified and low-cost option for capturing the U.S. stock market.",
		Category:    "US Equities",
		Rationale:   "Serves as the core U.S. equity holding, providing broad diversification across thousands of stocks. It is the primary engine for long-term growth in most portfolios.",
	},
	"VXUS": {
		Ticker:      "VXUS",
		Name:        "Vanguard Total International Stock ETF",
		Description: "Offers broad exposure across developed and emerging non-U.S. equity markets. It is a convenient way to diversify internationally in a single fund.",
		Category:    "International Equities",
		Rationale:   "Adds geographic diversification, reducing home-country bias and providing exposure to growth opportunities in markets outside the United States.",
	},
	"BND": {
		Ticker:      "BND",
		Name:        "Vanguard Total Bond Market ETF",
		Description: "Covers the entire U.S. investment-grade bond market, including government, corporate, and mortgage-backed securities. It is used to provide income and reduce portfolio volatility.",
		Category:    "Bonds",
		Rationale:   "Acts as a stabilizing force in the portfolio. Bonds typically have lower volatility than stocks and can provide a cushion during equity market downturns.",
	},
	"TIPS": {
		Ticker:      "TIPS",
		Name:        "Treasury Inflation-Protected Securities",
		Description: "These are U.S. government bonds whose principal value adjusts with inflation. They are designed to protect investors from the negative effects of rising prices.",
		Category:    "Bonds",
		Rationale:   "Specifically included to hedge against inflation risk. The value of TIPS increases as inflation rises, preserving the real return of this portion of the portfolio.",
	},
	"VNQ": {
		Ticker:      "VNQ",
		Name:        "Vanguard Real Estate ETF",
		Description: "Invests in REITs (Real Estate Investment Trusts) that purchase office buildings, hotels, and other real estate property. Offers exposure to the U.S. real estate market.",
		Category:    "Alternatives",
		Rationale:   "Provides diversification into real assets. Real estate can offer returns that are not perfectly correlated with stocks or bonds, and can also be an inflation hedge.",
	},
	"SGOV": {
		Ticker:      "SGOV",
		Name:        "iShares 0-3 Month Treasury Bond ETF",
		Description: "Invests in very short-term U.S. Treasury bonds with remaining maturities of less than three months. It is considered a cash equivalent, offering high liquidity and minimal risk.",
		Category:    "Cash & Equivalents",
		Rationale:   "Represents the most liquid and least risky part of the portfolio. It provides stability and ensures funds are readily available for opportunities or withdrawals.",
	},
	"GLD": {
		Ticker:      "GLD",
		Name:        "SPDR Gold Shares",
		Description: "An exchange-traded fund that tracks the price of gold. It is often used as a hedge against inflation and currency devaluation.",
		Category:    "Alternatives",
		Rationale:   "Included as a non-correlated alternative asset. Gold often performs differently from stocks and bonds, especially during times of market stress or high inflation.",
	},
}
