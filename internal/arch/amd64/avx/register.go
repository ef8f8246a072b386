//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/simd-add/internal/cpu"
	"github.com/cwbudde/simd-add/internal/registry"
)

// init registers the AVX 8-lane kernel with the registry.
//
// AVX provides 256-bit SIMD registers, i.e. 8 float32 lanes per operation.
// Available on Intel Sandy Bridge (2011+) and AMD Bulldozer (2011+).
//
// Priority: 20 (preferred over SSE2 and scalar when available)
func init() {
	registry.Global.Register(registry.Entry{
		Name:       "avx",
		SIMDLevel:  cpu.SIMDAVX,
		Priority:   20,
		Lanes:      lanes,
		Diagnostic: "AVX is detected.",
		Add:        AddBlock,
	})
}
