//go:build amd64 && !purego

package vecadd

// This file imports amd64-specific kernel packages to trigger their init()
// functions, which register kernels with the global registry.

import (
	// AMD64 kernels
	_ "github.com/cwbudde/simd-add/internal/arch/amd64/avx"
	_ "github.com/cwbudde/simd-add/internal/arch/amd64/sse2"

	// Scalar kernel (fallback)
	_ "github.com/cwbudde/simd-add/internal/arch/generic"
)
