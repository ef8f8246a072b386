//go:build !purego && arm64

package neon

import "github.com/cwbudde/simd-add/internal/arch/chunk"

// lanes is the number of float32 elements per block, matching the
// 128-bit NEON register width.
const lanes = 4

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// Processes 4 float32 lanes per block with a scalar remainder loop.
func AddBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	chunk.Add(dst, a, b, lanes, add4)
}

// add4 adds one full 4-lane block. The fixed-cap reslices let the compiler
// drop the bounds checks and emit a single FADD over the vector block.
func add4(dst, a, b []float32) {
	dst = dst[:4:4]
	a = a[:4:4]
	b = b[:4:4]
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
}
