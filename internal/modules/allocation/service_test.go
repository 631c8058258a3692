package allocation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufolio/edufolio/internal/domain"
)

func TestTargetAllocationsSumToOne(t *testing.T) {
	svc := NewService(zerolog.Nop())

	for _, bucket := range domain.AllBuckets {
		weights := svc.TargetAllocation(bucket)

		sum := 0.0
		for _, w := range weights {
			assert.GreaterOrEqual(t, w, 0.0)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "weights for %s must sum to 1", bucket)
	}
}

func TestTargetAllocationShiftsWithRisk(t *testing.T) {
	svc := NewService(zerolog.Nop())

	conservative := svc.TargetAllocation(domain.BucketConservative)
	aggressive := svc.TargetAllocation(domain.BucketAggressive)

	assert.Greater(t, aggressive["VTI"], conservative["VTI"], "equities grow with risk appetite")
	assert.Less(t, aggressive["BND"], conservative["BND"], "bonds shrink with risk appetite")
	assert.Equal(t, 0.0, aggressive["SGOV"], "aggressive holds no cash buffer")
	assert.Equal(t, 0.10, conservative["TIPS"], "inflation protection is conservative-only")
}

func TestTargetAllocationReturnsCopy(t *testing.T) {
	svc := NewService(zerolog.Nop())

	first := svc.TargetAllocation(domain.BucketGrowth)
	first["VTI"] = 0.99

	second := svc.TargetAllocation(domain.BucketGrowth)
	assert.Equal(t, 0.50, second["VTI"])
}

func TestCorePortfolioMetrics(t *testing.T) {
	svc := NewService(zerolog.Nop())

	tests := []struct {
		bucket         domain.RiskBucket
		expectedReturn float64
		volatility     float64
		sharpe         float64
	}{
		{domain.BucketConservative, 4.5, 6.0, 0.58},
		{domain.BucketBalanced, 6.2, 9.5, 0.65},
		{domain.BucketGrowth, 8.1, 13.5, 0.70},
		{domain.BucketAggressive, 9.5, 16.0, 0.72},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			p := svc.CorePortfolio(tt.bucket)
			assert.Equal(t, tt.expectedReturn, p.ExpectedReturn)
			assert.Equal(t, tt.volatility, p.Volatility)
			assert.Equal(t, tt.sharpe, p.SharpeRatio)
			assert.NotEmpty(t, p.Weights)
		})
	}
}

func TestUnknownBucketFallsBackToBalanced(t *testing.T) {
	svc := NewService(zerolog.Nop())

	p := svc.CorePortfolio(domain.RiskBucket("Mystery"))
	assert.Equal(t, 6.2, p.ExpectedReturn)
	assert.Equal(t, 0.35, p.Weights["VTI"])
}

func TestAssetDescriptions(t *testing.T) {
	svc := NewService(zerolog.Nop())

	descriptions := svc.AssetDescriptions()
	require.Len(t, descriptions, 7)
	assert.Equal(t, "VTI", descriptions[0].Ticker, "presentation order is fixed")

	for _, d := range descriptions {
		assert.NotEmpty(t, d.Name, d.Ticker)
		assert.NotEmpty(t, d.Description, d.Ticker)
		assert.NotEmpty(t, d.Category, d.Ticker)
		assert.NotEmpty(t, d.Rationale, d.Ticker)
	}

	gld, ok := svc.DescribeAsset("GLD")
	require.True(t, ok)
	assert.Equal(t, "SPDR Gold Shares", gld.Name)

	_, ok = svc.DescribeAsset("ZZZ")
	assert.False(t, ok)
}
