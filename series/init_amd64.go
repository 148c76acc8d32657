//go:build amd64 && !purego

package series

import (
	_ "github.com/berquist/simd-examples/series/internal/arch/amd64/avx" // register AVX backend
	_ "github.com/berquist/simd-examples/series/internal/arch/generic"   // register generic backend
	_ "github.com/berquist/simd-examples/series/internal/arch/registry"  // initialize backend registry
)
