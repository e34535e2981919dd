package align

import (
	"github.com/davejbax/alignoff/internal/math"
	"golang.org/x/exp/constraints"
)

// Offset returns the smallest o such that (addr + o*stride) mod alignment == 0,
// or [Unreachable] if there is none.
//
// alignment must be a non-zero power of two. This is not checked; use
// [OffsetChecked] for untrusted input. Offset never panics, and it runs in
// constant time apart from the inverse's doubling loop.
func Offset[N constraints.Unsigned](addr N, stride N, alignment N) N {
	return Solve(MethodHensel, addr, stride, alignment)
}

// Solve is [Offset] with an explicit choice of solver. Every method returns
// the same result for every input. A method not listed by [Methods] is solved
// with [MethodHensel].
func Solve[N constraints.Unsigned](method Method, addr N, stride N, alignment N) N {
	mask := alignment - 1
	pmoda := addr & mask

	if pmoda == 0 {
		return 0
	}

	if stride <= 1 {
		if stride == 0 {
			// Advancing by zero-sized elements never moves the address.
			return Unreachable[N]()
		}

		return alignment - pmoda
	}

	switch method {
	case MethodReduced:
		return solveReduced(addr, stride, alignment)
	default:
		return solveHensel(addr, stride, alignment)
	}
}

// solveHensel solves p + s*o ≡ 0 (mod a) for s > 1 and p mod a != 0.
//
// With g = gcd(s, a) = 2^gcdpow, a solution exists only if g divides p.
// Dividing through by g gives
//
//	p' + s'*o ≡ 0 (mod a')
//
// where s' is odd and so invertible mod a', and the minimal solution is
//
//	o = (a' - p' mod a') * s'^-1 mod a'
//
// The result is reduced mod a' rather than a, since the reduced equation only
// fixes o up to multiples of a'.
func solveHensel[N constraints.Unsigned](addr N, stride N, alignment N) N {
	mask := alignment - 1
	apow := math.TrailingZeros(alignment)
	gcdpow := min(math.TrailingZeros(stride), apow)
	gcd := N(1) << gcdpow

	if addr&(gcd-1) != 0 {
		return Unreachable[N]()
	}

	a2 := alignment >> gcdpow
	s2 := (stride & mask) >> gcdpow
	minusp2 := a2 - ((addr & mask) >> gcdpow)

	// The inverse may be out of range for a'; the wrapped product is masked
	// afterwards.
	return minusp2 * math.InversePow2(s2, apow-gcdpow) & (a2 - 1)
}

// solveReduced is the same congruence solved with an inverse taken modulo
// the full alignment. An inverse mod a is also one mod a', so only the final
// mask differs.
func solveReduced[N constraints.Unsigned](addr N, stride N, alignment N) N {
	mask := alignment - 1
	gcdpow := min(math.TrailingZeros(stride), math.TrailingZeros(alignment))
	gcd := N(1) << gcdpow

	if addr&(gcd-1) != 0 {
		return Unreachable[N]()
	}

	j := (alignment - addr&mask) >> gcdpow
	k := (stride & mask) >> gcdpow

	return j * math.InverseMod(k, alignment) & ((alignment >> gcdpow) - 1)
}
