package generic

import (
	"github.com/cwbudde/simd-add/internal/cpu"
	"github.com/cwbudde/simd-add/internal/registry"
)

// init registers the scalar kernel with the registry.
//
// The scalar kernel is the baseline fallback when no SIMD capability is
// available or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.Entry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		Lanes:      1,
		Diagnostic: "no SIMD extension is detected.",
		Add:        AddBlock,
	})
}
