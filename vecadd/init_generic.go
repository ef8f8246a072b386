//go:build !amd64 && !arm64 && !purego

package vecadd

// This file imports the scalar kernel package for unsupported architectures.

import (
	_ "github.com/cwbudde/simd-add/internal/arch/generic"
)
