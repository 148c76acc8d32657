package series

import (
	"math"

	"github.com/berquist/simd-examples/lanes"
	"github.com/berquist/simd-examples/series/internal/arch/registry"
)

// padding fills unused lanes of a short chunk. Its lane evaluates to NaN and
// is never added.
var padding = Term{A: math.NaN(), B: math.NaN(), C: math.NaN()}

// evaluateChunks walks s in chunks of lanes.Width:
//
//	4 terms: one kernel call, all four lanes summed
//	3 terms: one kernel call with a NaN fourth lane, three lanes summed
//	1-2 terms: scalar formula per term
func evaluateChunks(k *registry.OpEntry, t float64, s Series) float64 {
	var total float64

	i := 0
	for ; i+lanes.Width <= len(s); i += lanes.Width {
		r1, r2, r3, r4 := vectorTerm(k, t, s[i], s[i+1], s[i+2], s[i+3])
		total += r1 + r2 + r3 + r4
	}

	switch rest := s[i:]; len(rest) {
	case 3:
		r1, r2, r3, _ := vectorTerm(k, t, rest[0], rest[1], rest[2], padding)
		total += r1 + r2 + r3
	case 2:
		total += rest[0].Eval(t) + rest[1].Eval(t)
	case 1:
		total += rest[0].Eval(t)
	}

	return total
}
