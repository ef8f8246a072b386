//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/simd-add/internal/cpu"
	"github.com/cwbudde/simd-add/internal/registry"
)

// init registers the SSE2 4-lane kernel with the registry.
//
// SSE2 is part of the x86-64 baseline, so this kernel is always usable on
// amd64. It serves as the narrow-vector path when AVX is not available.
//
// Priority: 10 (preferred over scalar, superseded by AVX)
func init() {
	registry.Global.Register(registry.Entry{
		Name:       "sse2",
		SIMDLevel:  cpu.SIMDSSE2,
		Priority:   10,
		Lanes:      lanes,
		Diagnostic: "SSE2 is detected.",
		Add:        AddBlock,
	})
}
