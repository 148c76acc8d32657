package series

import (
	"testing"

	"github.com/berquist/simd-examples/internal/cpu"
	"github.com/berquist/simd-examples/internal/testutil"
	"github.com/berquist/simd-examples/lanes"
	archregistry "github.com/berquist/simd-examples/series/internal/arch/registry"
)

var testTimes = []float64{0, 1.5, -37.25, 1989}

func fromTriples(tr [][3]float64) Series {
	s := make(Series, len(tr))
	for i, x := range tr {
		s[i] = Term{A: x[0], B: x[1], C: x[2]}
	}
	return s
}

func randomSeries(seed int64, n int) Series {
	return fromTriples(testutil.DeterministicTriples(seed, n, 0.25, 8))
}

// supportedBackends returns every registered backend the executing processor
// can run. The generic backend is always included.
func supportedBackends(t testing.TB) []archregistry.OpEntry {
	t.Helper()

	cpu.ResetDetection()
	features := cpu.Query()

	var out []archregistry.OpEntry
	for _, e := range archregistry.Global.ListEntries() {
		if cpu.Supports(features, e.SIMDLevel) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		t.Fatal("no usable backend registered")
	}
	return out
}

// canForceAVX reports whether forcing HasAVX is safe: either the AVX backend
// is compiled in and the processor really has AVX, or no instruction-level
// backend is compiled in at all.
func canForceAVX() bool {
	cpu.ResetDetection()
	return !lanes.Accelerated || cpu.Query().HasAVX
}

// countingBackend wraps the generic arithmetic and counts Mul calls. The
// kernel multiplies twice per invocation.
func countingBackend(muls *int) *archregistry.OpEntry {
	return &archregistry.OpEntry{
		Name:      "counting",
		SIMDLevel: cpu.SIMDNone,
		Add:       lanes.AddQuad,
		Mul: func(x, y lanes.Quad) lanes.Quad {
			*muls++
			return lanes.MulQuad(x, y)
		},
	}
}
