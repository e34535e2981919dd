// Package aligntest provides a brute-force reference for align.Offset, for
// use in tests and differential sweeps.
package aligntest

import (
	"fmt"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/davejbax/alignoff/internal/math"
	"golang.org/x/exp/constraints"
)

// Naive scans o = 0, 1, ... and returns the first o for which
// addr + o*stride is a multiple of alignment. The residues of addr + o*stride
// repeat with period alignment / gcd(stride, alignment), so the scan stops
// there and reports align.Unreachable.
//
// The scan is linear in alignment; keep alignments small.
func Naive[N constraints.Unsigned](addr N, stride N, alignment N) N {
	if alignment == 0 {
		return align.Unreachable[N]()
	}

	period := alignment / math.GreatestCommonDivisor(stride, alignment)

	for o := N(0); o < period; o++ {
		if (addr+o*stride)%alignment == 0 {
			return o
		}
	}

	return align.Unreachable[N]()
}

// Reachable reports whether any number of strides aligns addr, which holds
// exactly when gcd(stride, alignment) divides the misalignment
// addr mod alignment. alignment must be non-zero.
func Reachable[N constraints.Unsigned](addr N, stride N, alignment N) bool {
	return addr%alignment%math.GreatestCommonDivisor(stride, alignment) == 0
}

// Mismatch describes an input on which a solver disagreed with [Naive].
type Mismatch[N constraints.Unsigned] struct {
	Address   N
	Stride    N
	Alignment N
	Got       N
	Want      N
}

func (m Mismatch[N]) String() string {
	return fmt.Sprintf("aligning 0x%x (stride %d) to %d: expected %s, got %s",
		m.Address, m.Stride, m.Alignment, Format(m.Want), Format(m.Got))
}

// Check runs solve on one input and compares it against [Naive].
func Check[N constraints.Unsigned](solve func(addr, stride, alignment N) N, addr N, stride N, alignment N) (Mismatch[N], bool) {
	got := solve(addr, stride, alignment)
	want := Naive(addr, stride, alignment)

	return Mismatch[N]{
		Address:   addr,
		Stride:    stride,
		Alignment: alignment,
		Got:       got,
		Want:      want,
	}, got == want
}

// Format renders an offset, spelling out the sentinel.
func Format[N constraints.Unsigned](offset N) string {
	if offset == align.Unreachable[N]() {
		return "unreachable"
	}

	return fmt.Sprintf("%d", offset)
}
