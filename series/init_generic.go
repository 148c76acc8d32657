//go:build purego || !amd64

package series

import (
	_ "github.com/berquist/simd-examples/series/internal/arch/generic"  // register generic backend
	_ "github.com/berquist/simd-examples/series/internal/arch/registry" // initialize backend registry
)
