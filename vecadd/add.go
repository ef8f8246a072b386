// Package vecadd performs element-wise float32 addition using the widest
// SIMD capability the CPU advertises.
//
// Three interchangeable kernels exist: an 8-lane wide-vector kernel (AVX),
// a 4-lane narrow-vector kernel (SSE2 on amd64, NEON on arm64), and a plain
// scalar fallback. The kernels register themselves at package init, and the
// best one is selected exactly once, on first use, based on detected CPU
// features. All three produce bit-identical results: each output element is
// the IEEE-754 sum of exactly two inputs, so no rounding divergence is
// possible between lane widths.
package vecadd

import (
	"sync"

	"github.com/cwbudde/simd-add/internal/cpu"
	"github.com/cwbudde/simd-add/internal/registry"
)

// Info describes the kernel selected for this process.
type Info struct {
	// Name identifies the kernel (e.g., "avx", "sse2", "neon", "generic").
	Name string

	// Lanes is the number of float32 elements processed per block (1 for scalar).
	Lanes int

	// Diagnostic is the capability line identifying this code path.
	Diagnostic string
}

var (
	selectOnce sync.Once
	selectMu   sync.Mutex
	selected   *registry.Entry
)

// active returns the kernel selected for the current CPU, choosing it on
// first use and never re-evaluating afterwards.
func active() *registry.Entry {
	selectMu.Lock()
	defer selectMu.Unlock()
	selectOnce.Do(func() {
		selected = registry.Global.Lookup(cpu.DetectFeatures())
	})
	return selected
}

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// The inputs must not overlap dst.
func Add(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
	active().Add(dst, a, b)
}

// Implementation reports which kernel was selected for this process.
func Implementation() Info {
	entry := active()
	return Info{
		Name:       entry.Name,
		Lanes:      entry.Lanes,
		Diagnostic: entry.Diagnostic,
	}
}

// ResetSelection clears the cached kernel selection so the next call to Add
// or Implementation re-runs the lookup. This is intended for testing purposes
// only, together with cpu.SetForcedFeatures.
func ResetSelection() {
	selectMu.Lock()
	defer selectMu.Unlock()
	selectOnce = sync.Once{}
	selected = nil
}
