// Package chunk implements the shared chunked-loop skeleton used by the
// SIMD-width kernels.
//
// Every vector kernel in this repository is an instance of one pattern:
// process the input in fixed-width blocks using a bulk add primitive, then
// finish the n mod width trailing elements with plain scalar additions.
// The wide and narrow kernels differ only in the block width and the
// primitive they pass in.
package chunk

// Add performs dst[i] = a[i] + b[i] by splitting the slices into width-sized
// blocks handled by bulk, then adding the remainder one element at a time.
//
// All three slices must have the same length; callers check this. width must
// be positive.
func Add(dst, a, b []float32, width int, bulk func(dst, a, b []float32)) {
	n := len(dst)
	i := 0
	for ; i+width <= n; i += width {
		bulk(dst[i:i+width], a[i:i+width], b[i:i+width])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}
