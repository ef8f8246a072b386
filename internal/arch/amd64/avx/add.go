//go:build !purego && amd64

package avx

import "github.com/cwbudde/simd-add/internal/arch/chunk"

// lanes is the number of float32 elements per block, matching the
// 256-bit AVX register width.
const lanes = 8

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// Processes 8 float32 lanes per block with a scalar remainder loop.
func AddBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	chunk.Add(dst, a, b, lanes, add8)
}

// add8 adds one full 8-lane block. The fixed-cap reslices let the compiler
// drop the bounds checks and emit a single VADDPS over the block.
func add8(dst, a, b []float32) {
	dst = dst[:8:8]
	a = a[:8:8]
	b = b[:8:8]
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
	dst[4] = a[4] + b[4]
	dst[5] = a[5] + b[5]
	dst[6] = a[6] + b[6]
	dst[7] = a[7] + b[7]
}
