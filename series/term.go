package series

import "math"

// Tolerance is the maximum absolute difference allowed between any two
// strategies evaluating the same series at the same time.
const Tolerance = 1e-14

// Term is one additive component a·cos(b + c·t): amplitude A, phase offset B
// and angular rate C.
type Term struct {
	A, B, C float64
}

// Eval returns A·cos(B + C·t).
func (x Term) Eval(t float64) float64 {
	return float64(x.A * math.Cos(x.B+float64(x.C*t)))
}

// Series is an ordered list of terms. Order defines summation order.
type Series []Term

// Len returns the number of terms.
func (s Series) Len() int {
	return len(s)
}

// Columns returns the coefficients as three parallel slices.
func (s Series) Columns() (a, b, c []float64) {
	a = make([]float64, len(s))
	b = make([]float64, len(s))
	c = make([]float64, len(s))

	for i, x := range s {
		a[i], b[i], c[i] = x.A, x.B, x.C
	}

	return a, b, c
}
