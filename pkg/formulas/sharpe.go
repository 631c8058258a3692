package formulas

import (
	"math"
)

// CalculateSharpeRatio calculates the annualized Sharpe ratio from periodic
// returns.
//
//	Sharpe = (Mean Return - Periodic Risk-free Rate) / StdDev of Returns
//	Annualized: Sharpe x sqrt(periodsPerYear)
//
// riskFreeRate is annual, as a decimal (0.02 for 2%). Returns nil when there
// is not enough data or the series has no variance.
func CalculateSharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) *float64 {
	if len(returns) < 2 || periodsPerYear <= 0 {
		return nil
	}

	stdDev := StdDev(returns)
	if stdDev == 0 {
		return nil
	}

	periodicRiskFree := riskFreeRate / float64(periodsPerYear)
	sharpe := (Mean(returns) - periodicRiskFree) / stdDev

	annualized := sharpe * math.Sqrt(float64(periodsPerYear))
	return &annualized
}
