package series

import (
	"sync"

	"github.com/berquist/simd-examples/internal/cpu"
	archregistry "github.com/berquist/simd-examples/series/internal/arch/registry"
)

var (
	nativeImpl     *archregistry.OpEntry
	nativeInitOnce sync.Once
)

func initNativeKernel() {
	entry := archregistry.Global.Find(nativeBackend)
	if entry == nil {
		panic("series: native backend " + nativeBackend + " not registered")
	}

	if entry.Add == nil || entry.Mul == nil {
		panic("series: native backend " + nativeBackend + " missing operations")
	}

	nativeImpl = entry
}

func nativeKernel() *archregistry.OpEntry {
	nativeInitOnce.Do(initNativeKernel)
	return nativeImpl
}

// NativeBackend names the backend used by EvaluateVectorInner and VectorTerm:
// "avx" on amd64 builds without the purego tag, "generic" otherwise.
func NativeBackend() string {
	return nativeBackend
}

// NativeAvailable reports whether the executing processor supports the native
// backend, i.e. whether EvaluateVectorInner and VectorTerm may be called.
func NativeAvailable() bool {
	return VectorInner.Available()
}

// EvaluateVectorInner evaluates s with the native 4-lane backend and no
// capability check.
//
// Precondition: NativeAvailable() is true. On amd64 the native backend issues
// AVX instructions; calling this on a processor without AVX is a fatal
// illegal-instruction fault, not an error. Use EvaluateVector unless the
// check has already been made.
func EvaluateVectorInner(t float64, s Series) float64 {
	return evaluateChunks(nativeKernel(), t, s)
}

// EvaluateVector queries the processor for AVX and, when present, evaluates s
// on the best registered 4-lane backend. Otherwise it folds s with a scalar
// loop. The query runs on every call.
func EvaluateVector(t float64, s Series) float64 {
	features := cpu.Query()
	if !cpu.Supports(features, cpu.SIMDAVX) {
		return scalarFallback(t, s)
	}

	entry := archregistry.Global.Lookup(features)
	if entry == nil {
		panic("series: no 4-lane backend registered (missing generic fallback?)")
	}

	// The entry's SIMD level is supported by features; this is the one call
	// site that makes the unchecked kernel safe.
	return evaluateChunks(entry, t, s)
}
