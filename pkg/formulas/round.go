package formulas

import (
	"math"
)

// Round2 rounds to 2 decimal places
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
