// Command simd-add demonstrates SIMD-style element-wise array addition.
//
// Usage:
//
//	simd-add [flags]
//
// Without flags it reproduces the classic demo: two 1024-element float32
// arrays filled with a[i] = i and b[i] = n-i are added element-wise, and the
// first 10 sums are printed (every sum equals 1024). A capability line
// identifying the selected code path (AVX, SSE2, NEON or scalar) is printed
// before the results.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/simd-add/vecadd"
)

// allocFunc allocates a float32 buffer of length n. The indirection exists
// so tests can simulate allocation failure; the default allocator never fails.
type allocFunc func(n int) ([]float32, error)

func defaultAlloc(n int) ([]float32, error) {
	return make([]float32, n), nil
}

// fillPattern populates the input arrays with the deterministic demo pattern
// a[i] = i, b[i] = n - i, so that every element-wise sum equals n.
// Both slices must have the same length.
func fillPattern(a, b []float32) {
	n := len(a)
	for i := range a {
		a[i] = float32(i)
		b[i] = float32(n - i)
	}
}

// run executes the demo: allocate the three buffers, fill the inputs, print
// the capability line, add, and print the first show sums. It returns the
// process exit code. On allocation failure it reports to stderr and returns 1
// without performing any computation.
func run(stdout, stderr io.Writer, alloc allocFunc, n, show int) int {
	a, errA := alloc(n)
	b, errB := alloc(n)
	c, errC := alloc(n)
	if errA != nil || errB != nil || errC != nil {
		fmt.Fprintln(stderr, "Memory allocation failed")
		return 1
	}

	fillPattern(a, b)

	fmt.Fprintln(stdout, vecadd.Implementation().Diagnostic)
	vecadd.Add(c, a, b)

	if show > n {
		show = n
	}
	for i := 0; i < show; i++ {
		fmt.Fprintf(stdout, "c[%d] = %f\n", i, c[i])
	}

	return 0
}

func main() {
	n := flag.Int("n", 1024, "array length")
	show := flag.Int("show", 10, "number of leading sums to print")
	flag.Parse()

	if *n < 0 || *show < 0 {
		fmt.Fprintln(os.Stderr, "simd-add: -n and -show must be non-negative")
		os.Exit(2)
	}

	os.Exit(run(os.Stdout, os.Stderr, defaultAlloc, *n, *show))
}
