//go:build amd64 && !purego

// Package avx registers the AVX 4-lane backend.
package avx

import (
	"github.com/berquist/simd-examples/internal/cpu"
	"github.com/berquist/simd-examples/lanes"
	"github.com/berquist/simd-examples/series/internal/arch/registry"
)

// init registers 256-bit VADDPD/VMULPD on four float64 lanes.
// Available on Intel Sandy Bridge (2011+) and AMD Bulldozer (2011+).
//
// Priority: 15 (preferred over generic when AVX is present)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  15,
		Add:       lanes.AddQuadVec,
		Mul:       lanes.MulQuadVec,
	})
}
