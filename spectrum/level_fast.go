//go:build fastmath

package spectrum

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for log base conversion.
const ln10 = 2.30258509299404568401799145468

// levelDB converts a linear amplitude to decibels using a fast logarithm.
func levelDB(amp float64) float64 {
	if amp <= 0 {
		return math.Inf(-1)
	}

	return 20 * approx.FastLog(amp) / ln10
}
