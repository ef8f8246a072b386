package generic

import (
	"fmt"
	"testing"
)

func TestAddBlock(t *testing.T) {
	sizes := []int{0, 1, 3, 7, 9, 100, 1023}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := make([]float32, n)
			b := make([]float32, n)
			dst := make([]float32, n)

			for i := range a {
				a[i] = float32(i) + 0.5
				b[i] = float32(n-i) * 0.1
			}

			AddBlock(dst, a, b)

			for i := range dst {
				want := a[i] + b[i]
				if dst[i] != want {
					t.Errorf("AddBlock[%d]: got %v, want %v", i, dst[i], want)
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
	AddBlock(make([]float32, 5), make([]float32, 5), make([]float32, 4))
}
