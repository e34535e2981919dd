package math

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// TrailingZeros returns the number of trailing zero bits in x. For x == 0 the
// result is 64 regardless of the width of N, so callers must handle zero
// themselves.
func TrailingZeros[N constraints.Unsigned](x N) uint {
	return uint(bits.TrailingZeros64(uint64(x)))
}

// IsPow2 reports whether x is a non-zero power of two.
func IsPow2[N constraints.Unsigned](x N) bool {
	return x != 0 && x&(x-1) == 0
}
