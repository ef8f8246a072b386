package generic

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure scalar fallback: every element is added individually.
func AddBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
