// Package generic registers the portable 4-lane backend.
package generic

import (
	"github.com/berquist/simd-examples/internal/cpu"
	"github.com/berquist/simd-examples/lanes"
	"github.com/berquist/simd-examples/series/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Add:       lanes.AddQuad,
		Mul:       lanes.MulQuad,
	})
}
