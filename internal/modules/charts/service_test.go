package charts

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufolio/edufolio/internal/clients/yahoo"
	"github.com/edufolio/edufolio/internal/domain"
)

func testService() *Service {
	return NewService(zerolog.Nop())
}

func monthlyBars(closes []float64) []yahoo.HistoricalPrice {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]yahoo.HistoricalPrice, len(closes))
	for i, c := range closes {
		bars[i] = yahoo.HistoricalPrice{
			Date:  start.AddDate(0, i, 0),
			Close: c,
		}
	}
	return bars
}

func TestSeriesFromBars(t *testing.T) {
	s := testService()

	points := s.SeriesFromBars(monthlyBars([]float64{100, 102.456, 0, 98.1}))

	require.Len(t, points, 3, "zero closes should be dropped")
	assert.Equal(t, "Jan 25", points[0].Label)
	assert.Equal(t, 100.0, points[0].Price)
	assert.Equal(t, 102.46, points[1].Price)
	assert.Equal(t, "Apr 25", points[2].Label)
}

func TestTrend(t *testing.T) {
	s := testService()

	points := []domain.PricePoint{
		{Label: "Jan 25", Price: 100},
		{Label: "Feb 25", Price: 110},
		{Label: "Mar 25", Price: 120},
		{Label: "Apr 25", Price: 130},
	}

	trend := s.Trend(points)

	require.Len(t, trend, 2, "overlay starts once the window fills")
	assert.Equal(t, "Mar 25", trend[0].Label)
	assert.Equal(t, 110.0, trend[0].Price)
	assert.Equal(t, "Apr 25", trend[1].Label)
	assert.Equal(t, 120.0, trend[1].Price)
}

func TestTrendTooShort(t *testing.T) {
	s := testService()

	trend := s.Trend([]domain.PricePoint{{Label: "Jan 25", Price: 100}})
	assert.Empty(t, trend)
}

func TestSeriesVolatility(t *testing.T) {
	s := testService()

	flat := []domain.PricePoint{
		{Price: 100}, {Price: 100}, {Price: 100}, {Price: 100},
	}
	assert.Equal(t, 0.0, s.SeriesVolatility(flat), "constant series has zero volatility")

	varied := []domain.PricePoint{
		{Price: 100}, {Price: 110}, {Price: 95}, {Price: 105},
	}
	assert.Greater(t, s.SeriesVolatility(varied), 0.0)

	assert.Equal(t, 0.0, s.SeriesVolatility([]domain.PricePoint{{Price: 100}}))
}

func TestSeriesSharpe(t *testing.T) {
	s := testService()

	varied := []domain.PricePoint{
		{Price: 100}, {Price: 110}, {Price: 95}, {Price: 105},
	}
	sharpe := s.SeriesSharpe(varied)
	require.NotNil(t, sharpe)
	assert.NotZero(t, *sharpe)

	flat := []domain.PricePoint{
		{Price: 100}, {Price: 100}, {Price: 100},
	}
	assert.Nil(t, s.SeriesSharpe(flat), "no variance means no ratio")

	assert.Nil(t, s.SeriesSharpe([]domain.PricePoint{{Price: 100}, {Price: 110}}), "two points cannot anchor the ratio")
}

func TestForecast(t *testing.T) {
	s := testService()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	historical := []domain.PricePoint{
		{Label: "May 25", Price: 95},
		{Label: "Jun 25", Price: 100},
	}

	series := s.Forecast(historical, 100, 0.06, now)

	require.Len(t, series, 8)

	// Historical points carry price only
	require.NotNil(t, series[0].Price)
	assert.Nil(t, series[0].Forecast)
	assert.Equal(t, 95.0, *series[0].Price)

	// Projected points carry forecast only
	first := series[2]
	assert.Equal(t, "Jul 25", first.Label)
	assert.Nil(t, first.Price)
	require.NotNil(t, first.Forecast)
	assert.InDelta(t, 101.0, *first.Forecast, 0.001)

	// Monthly compounding at annualGrowth/6 per step
	last := series[7]
	assert.Equal(t, "Dec 25", last.Label)
	require.NotNil(t, last.Forecast)
	assert.InDelta(t, 106.15, *last.Forecast, 0.01)
}

func TestForecastNegativeGrowth(t *testing.T) {
	s := testService()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	series := s.Forecast(nil, 200, -0.12, now)

	require.Len(t, series, 6)
	for _, p := range series {
		require.NotNil(t, p.Forecast)
	}
	assert.Less(t, *series[5].Forecast, 200.0)
}
