//go:build arm64 && !purego

package vecadd

// This file imports arm64-specific kernel packages to trigger their init()
// functions, which register kernels with the global registry.

import (
	// ARM64 kernels
	_ "github.com/cwbudde/simd-add/internal/arch/arm64/neon"

	// Scalar kernel (fallback)
	_ "github.com/cwbudde/simd-add/internal/arch/generic"
)
