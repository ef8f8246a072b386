// Package registry provides the implementation registry for the add kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (scalar, SSE2, AVX, NEON) to coexist. The best kernel for the current CPU
// is selected automatically at runtime.
//
// Architecture-specific kernels register themselves via init() functions,
// and the vecadd package uses the registry to select the best kernel once,
// based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/simd-add/internal/cpu"
)

// Entry represents a registered kernel variant.
type Entry struct {
	// Name is a human-readable identifier for this kernel (e.g., "avx", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this kernel.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible kernels exist.
	// Higher priority kernels are preferred. Suggested priorities:
	//   - Scalar (SIMDNone): 0
	//   - SSE2/NEON (4 lanes): 10
	//   - AVX (8 lanes): 20
	Priority int

	// Lanes is the number of float32 elements processed per block.
	// 1 for the scalar kernel.
	Lanes int

	// Diagnostic is the capability line printed before processing,
	// identifying which code path is active.
	Diagnostic string

	// Add performs element-wise addition: dst[i] = a[i] + b[i].
	Add func(dst, a, b []float32)
}

// Registry manages the registration and lookup of kernel variants.
//
// Kernels register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority kernel compatible with the current CPU.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the vecadd package.
var Global = &Registry{}

// Register adds a kernel variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// kernel packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no compatible
// kernels are found, returns nil (which should never happen if the scalar
// fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil // Should never happen if the scalar fallback is registered
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// Simple insertion sort (registry is small, 2-3 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *Registry) ListEntries() []Entry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
