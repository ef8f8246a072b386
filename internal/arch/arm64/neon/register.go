//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/simd-add/internal/cpu"
	"github.com/cwbudde/simd-add/internal/registry"
)

// init registers the NEON 4-lane kernel with the registry.
//
// NEON (Advanced SIMD) is mandatory on ARMv8, so this kernel is effectively
// always usable on arm64. It is the narrow-vector path on that architecture.
//
// Priority: 10 (preferred over scalar)
func init() {
	registry.Global.Register(registry.Entry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   10,
		Lanes:      lanes,
		Diagnostic: "NEON is detected.",
		Add:        AddBlock,
	})
}
