package charts

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/clients/yahoo"
	"github.com/edufolio/edufolio/internal/domain"
	"github.com/edufolio/edufolio/pkg/formulas"
)

const (
	monthLabelFormat = "Jan 06"
	forecastMonths   = 6
	trendWindow      = 3
	monthsPerYear    = 12
	riskFreeRate     = 0.02
)

// Service builds chart-ready series from raw price bars
type Service struct {
	log zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "charts").Logger(),
	}
}

// SeriesFromBars converts price bars into labelled monthly close points.
// Bars with a zero close are dropped rather than plotted as gaps.
func (s *Service) SeriesFromBars(bars []yahoo.HistoricalPrice) []domain.PricePoint {
	points := make([]domain.PricePoint, 0, len(bars))
	for _, bar := range bars {
		if bar.Close == 0 || math.IsNaN(bar.Close) {
			continue
		}
		points = append(points, domain.PricePoint{
			Label: bar.Date.Format(monthLabelFormat),
			Price: formulas.Round2(bar.Close),
		})
	}
	return points
}

// Trend overlays a short moving average on the historical series, smoothing
// month-to-month noise. The overlay starts once the window has filled, so it
// is shorter than the input series.
func (s *Service) Trend(points []domain.PricePoint) []domain.PricePoint {
	if len(points) < trendWindow {
		return []domain.PricePoint{}
	}

	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Price
	}

	smoothed := formulas.TrailingSMA(closes, trendWindow)

	trend := make([]domain.PricePoint, 0, len(smoothed))
	offset := len(points) - len(smoothed)
	for i, v := range smoothed {
		trend = append(trend, domain.PricePoint{
			Label: points[offset+i].Label,
			Price: formulas.Round2(v),
		})
	}
	return trend
}

// SeriesVolatility returns the annualized volatility of a monthly close
// series, as a percentage.
func (s *Service) SeriesVolatility(points []domain.PricePoint) float64 {
	if len(points) < 2 {
		return 0
	}

	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Price
	}

	returns := formulas.CalculateReturns(closes)
	return formulas.Round2(formulas.AnnualizedVolatility(returns, monthsPerYear) * 100)
}

// SeriesSharpe returns the annualized Sharpe ratio of a monthly close series.
// Nil means the series is too short or has no variance to measure against.
func (s *Service) SeriesSharpe(points []domain.PricePoint) *float64 {
	if len(points) < 3 {
		return nil
	}

	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Price
	}

	sharpe := formulas.CalculateSharpeRatio(formulas.CalculateReturns(closes), riskFreeRate, monthsPerYear)
	if sharpe == nil {
		return nil
	}

	rounded := formulas.Round2(*sharpe)
	return &rounded
}

// Forecast extends the historical series with a six-month projected path.
// The projection compounds the annual growth rate in monthly steps from the
// last known price. Historical points keep Price set and Forecast nil;
// projected points are the reverse.
func (s *Service) Forecast(points []domain.PricePoint, lastPrice, annualGrowth float64, now time.Time) []domain.ForecastPoint {
	series := make([]domain.ForecastPoint, 0, len(points)+forecastMonths)
	for _, p := range points {
		price := p.Price
		series = append(series, domain.ForecastPoint{
			Label: p.Label,
			Price: &price,
		})
	}

	projected := lastPrice
	for i := 1; i <= forecastMonths; i++ {
		projected = projected * (1 + annualGrowth/forecastMonths)
		value := formulas.Round2(projected)
		series = append(series, domain.ForecastPoint{
			Label:    now.AddDate(0, i, 0).Format(monthLabelFormat),
			Forecast: &value,
		})
	}

	return series
}
