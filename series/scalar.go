package series

import "math"

// Evaluate returns Σ a·cos(b + c·t) folded left in series order, starting
// from 0. An empty series yields 0.
func Evaluate(t float64, s Series) float64 {
	var total float64
	for _, x := range s {
		total += x.Eval(t)
	}

	return total
}

// EvaluateInline is Evaluate with the term expression written in the loop
// body, leaving no per-term call for the compiler to decide about.
func EvaluateInline(t float64, s Series) float64 {
	var total float64
	for i := range s {
		x := &s[i]
		total += float64(x.A * math.Cos(x.B+float64(x.C*t)))
	}

	return total
}

// scalarFallback is the dispatch wrapper's path for processors without the
// vector extension. Numerically equivalent to Evaluate.
func scalarFallback(t float64, s Series) float64 {
	total := 0.0
	for i := 0; i < len(s); i++ {
		phase := s[i].B + float64(s[i].C*t)
		total += float64(s[i].A * math.Cos(phase))
	}

	return total
}
