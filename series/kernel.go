package series

import (
	"math"

	"github.com/berquist/simd-examples/lanes"
	"github.com/berquist/simd-examples/series/internal/arch/registry"
)

// VectorTerm evaluates four terms in lockstep on the native 4-lane backend and
// returns their values in argument order.
//
// Like EvaluateVectorInner it performs no capability check; see
// [NativeAvailable].
func VectorTerm(t float64, g1, g2, g3, g4 Term) (r1, r2, r3, r4 float64) {
	return vectorTerm(nativeKernel(), t, g1, g2, g3, g4)
}

// vectorTerm packs g1..g4 into three quads, computes a·cos(b + c·t) per lane
// with k's arithmetic and unpacks the result.
//
// lanes.Set reverses: lane 0 holds g4. The reversal is undone on return.
func vectorTerm(k *registry.OpEntry, t float64, g1, g2, g3, g4 Term) (r1, r2, r3, r4 float64) {
	a := lanes.Set(g1.A, g2.A, g3.A, g4.A)
	b := lanes.Set(g1.B, g2.B, g3.B, g4.B)
	c := lanes.Set(g1.C, g2.C, g3.C, g4.C)

	phase := k.Add(b, k.Mul(c, lanes.Set1(t)))

	// No vector cosine: round-trip through scalar lanes.
	p0, p1, p2, p3 := phase.Unpack()
	cos := lanes.Set(math.Cos(p3), math.Cos(p2), math.Cos(p1), math.Cos(p0))

	term := k.Mul(a, cos)
	r4, r3, r2, r1 = term.Unpack()

	return r1, r2, r3, r4
}
