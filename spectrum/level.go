//go:build !fastmath

package spectrum

import "math"

// levelDB converts a linear amplitude to decibels.
func levelDB(amp float64) float64 {
	if amp <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(amp)
}
