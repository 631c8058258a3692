package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	closes := []float64{100, 110, 120, 130}

	sma := SMA(closes, 3)
	require.Len(t, sma, 4)
	assert.InDelta(t, 110, sma[2], 1e-9)
	assert.InDelta(t, 120, sma[3], 1e-9)

	assert.Nil(t, SMA(closes, 5), "window larger than the series")
	assert.Nil(t, SMA(closes, 0))
}

func TestTrailingSMA(t *testing.T) {
	closes := []float64{100, 110, 120, 130}

	trimmed := TrailingSMA(closes, 3)
	require.Len(t, trimmed, 2)
	assert.InDelta(t, 110, trimmed[0], 1e-9)
	assert.InDelta(t, 120, trimmed[1], 1e-9)
}

func TestCalculateReturns(t *testing.T) {
	returns := CalculateReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-9)
	assert.InDelta(t, -0.10, returns[1], 1e-9)

	assert.Empty(t, CalculateReturns([]float64{100}))
}

func TestMeanAndStdDev(t *testing.T) {
	data := []float64{2, 4, 6}

	assert.InDelta(t, 4, Mean(data), 1e-9)
	assert.InDelta(t, 2, StdDev(data), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, StdDev(nil))
}

func TestAnnualizedVolatility(t *testing.T) {
	returns := []float64{0.02, -0.01, 0.03, 0.00}

	monthly := AnnualizedVolatility(returns, 12)
	daily := AnnualizedVolatility(returns, 252)

	assert.Greater(t, daily, monthly, "more periods per year scale volatility up")
	assert.Equal(t, 0.0, AnnualizedVolatility([]float64{0.02}, 12))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 102.46, Round2(102.456))
	assert.Equal(t, 102.45, Round2(102.454))
	assert.Equal(t, -1.5, Round2(-1.499))
	assert.Equal(t, 0.0, Round2(0))
}

func TestCalculateSharpeRatio(t *testing.T) {
	returns := []float64{0.02, 0.01, 0.03, 0.02}

	sharpe := CalculateSharpeRatio(returns, 0.02, 12)
	require.NotNil(t, sharpe)
	assert.Greater(t, *sharpe, 0.0)

	flat := []float64{0.01, 0.01, 0.01}
	assert.Nil(t, CalculateSharpeRatio(flat, 0.02, 12), "zero variance has no Sharpe")
	assert.Nil(t, CalculateSharpeRatio([]float64{0.01}, 0.02, 12))
}
