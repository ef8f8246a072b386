package registry

import (
	"testing"

	"github.com/cwbudde/simd-add/internal/cpu"
)

func nopAdd(dst, a, b []float32) {}

func testRegistry() *Registry {
	r := &Registry{}
	r.Register(Entry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Lanes: 1, Add: nopAdd})
	r.Register(Entry{Name: "avx", SIMDLevel: cpu.SIMDAVX, Priority: 20, Lanes: 8, Add: nopAdd})
	r.Register(Entry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Lanes: 4, Add: nopAdd})
	return r
}

func TestLookupPriorityChain(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"wide beats narrow", cpu.Features{HasAVX: true, HasSSE2: true}, "avx"},
		{"narrow without wide", cpu.Features{HasSSE2: true}, "sse2"},
		{"scalar fallback", cpu.Features{}, "generic"},
		{"force generic", cpu.Features{HasAVX: true, HasSSE2: true, ForceGeneric: true}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRegistry()
			entry := r.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("Lookup picked %q, want %q", entry.Name, tt.want)
			}
		})
	}
}

func TestLookupEmptyRegistry(t *testing.T) {
	r := &Registry{}
	if entry := r.Lookup(cpu.Features{}); entry != nil {
		t.Errorf("Lookup on empty registry = %+v, want nil", entry)
	}
}

func TestListEntriesSorted(t *testing.T) {
	r := testRegistry()

	entries := r.ListEntries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	wantOrder := []string{"avx", "sse2", "generic"}
	for i, want := range wantOrder {
		if entries[i].Name != want {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, want)
		}
	}
}

func TestReset(t *testing.T) {
	r := testRegistry()
	r.Reset()

	if entries := r.ListEntries(); len(entries) != 0 {
		t.Errorf("registry not empty after Reset: %d entries", len(entries))
	}
}

func TestGlobalHasScalarFallback(t *testing.T) {
	// The arch packages register through init() when imported by vecadd.
	// This package alone must still tolerate an empty global registry,
	// but if anything is registered, a SIMDNone entry must be among them.
	entries := Global.ListEntries()
	if len(entries) == 0 {
		t.Skip("no kernels registered in this test binary")
	}
	for _, e := range entries {
		if e.SIMDLevel == cpu.SIMDNone {
			return
		}
	}
	t.Error("no scalar fallback registered")
}
