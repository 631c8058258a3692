package formulas

import (
	"github.com/markcheno/go-talib"
)

// SMA calculates the simple moving average over the given window.
//
// The first window-1 entries of the result are NaN (not enough history);
// callers that want a plottable overlay should use TrailingSMA instead.
// Returns nil if there is not enough data for a single window.
func SMA(closes []float64, window int) []float64 {
	if window < 1 || len(closes) < window {
		return nil
	}

	return talib.Sma(closes, window)
}

// TrailingSMA returns the SMA series with the NaN warm-up prefix stripped,
// aligned so that result[i] smooths closes[i+window-1].
func TrailingSMA(closes []float64, window int) []float64 {
	sma := SMA(closes, window)
	if sma == nil {
		return nil
	}

	trimmed := make([]float64, 0, len(sma)-window+1)
	for _, v := range sma[window-1:] {
		if !isNaN(v) {
			trimmed = append(trimmed, v)
		}
	}
	return trimmed
}

// isNaN checks if a float64 is NaN
func isNaN(f float64) bool {
	return f != f
}
