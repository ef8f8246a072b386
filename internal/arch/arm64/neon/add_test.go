//go:build !purego && arm64

package neon

import (
	"fmt"
	"testing"
)

func addRef(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func TestAddBlock(t *testing.T) {
	// Sizes around the 4-lane block boundary exercise the remainder loop.
	sizes := []int{0, 1, 3, 4, 5, 7, 8, 9, 100, 1023, 1024}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := make([]float32, n)
			b := make([]float32, n)
			dst := make([]float32, n)
			expected := make([]float32, n)

			for i := range a {
				a[i] = float32(i) + 0.5
				b[i] = float32(n-i) * 0.1
			}

			addRef(expected, a, b)
			AddBlock(dst, a, b)

			for i := range dst {
				if dst[i] != expected[i] {
					t.Errorf("AddBlock[%d]: got %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

func TestAddBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]float32, 5), make([]float32, 6), make([]float32, 6))
}
