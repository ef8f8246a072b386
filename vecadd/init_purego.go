//go:build purego

package vecadd

// Under the purego tag only the scalar kernel is compiled in.

import (
	_ "github.com/cwbudde/simd-add/internal/arch/generic"
)
