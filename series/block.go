package series

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// BlockEvaluator evaluates one series repeatedly using a
// structure-of-arrays layout and algo-vecmath block kernels:
//
//	phase = c·t        (ScaleBlock)
//	phase += b         (AddBlockInPlace)
//	phase = cos(phase) (scalar loop)
//	phase *= a         (MulBlockInPlace)
//
// It keeps a scratch buffer and is therefore not safe for concurrent use.
type BlockEvaluator struct {
	a, b, c []float64
	phase   []float64
}

// NewBlockEvaluator copies s into column form.
func NewBlockEvaluator(s Series) *BlockEvaluator {
	a, b, c := s.Columns()

	return &BlockEvaluator{
		a:     a,
		b:     b,
		c:     c,
		phase: make([]float64, len(s)),
	}
}

// Len returns the number of terms.
func (e *BlockEvaluator) Len() int {
	return len(e.a)
}

// Evaluate returns the series value at t. Zero-alloc.
func (e *BlockEvaluator) Evaluate(t float64) float64 {
	if len(e.a) == 0 {
		return 0
	}

	vecmath.ScaleBlock(e.phase, e.c, t)
	vecmath.AddBlockInPlace(e.phase, e.b)

	for i, p := range e.phase {
		e.phase[i] = math.Cos(p)
	}

	vecmath.MulBlockInPlace(e.phase, e.a)

	var total float64
	for _, v := range e.phase {
		total += v
	}

	return total
}
