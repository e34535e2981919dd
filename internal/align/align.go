// Package align computes address alignment for strided memory.
//
// The central operation is [Offset]: given an address p, an element stride s
// and a power-of-two alignment a, it returns the smallest element count o such
// that p + o*s is a multiple of a, or [Unreachable] when no such count exists.
// Addresses are plain integers and are never dereferenced.
package align

import "golang.org/x/exp/constraints"

// Address rounds addr up to the next multiple of alignment. A zero alignment
// leaves addr unchanged.
func Address[N constraints.Unsigned](addr N, alignment N) N {
	if alignment == 0 {
		return addr
	}

	return ((addr + alignment - 1) / alignment) * alignment
}

// Unreachable returns the sentinel that [Offset] yields when no number of
// strides aligns the address: the largest value representable in N.
//
// Real offsets are always below the alignment, and the largest power of two
// representable in N is 2^(w-1), so the sentinel never collides with a result.
func Unreachable[N constraints.Unsigned]() N {
	return ^N(0)
}

// IsAligned reports whether addr is a multiple of the power-of-two alignment.
func IsAligned[N constraints.Unsigned](addr N, alignment N) bool {
	return addr&(alignment-1) == 0
}
