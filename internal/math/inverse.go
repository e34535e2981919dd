package math

import "golang.org/x/exp/constraints"

// Multiplicative inverses modulo 2^4 = 16 of the odd residues 1, 3, ..., 15.
// Even residues have no inverse and are left out, so the table is indexed by
// (x mod 16) >> 1.
var invTableMod16 = [8]uint8{1, 11, 13, 7, 9, 3, 5, 15}

const (
	invTableMod = 16

	// invTableModPow is s such that invTableMod == 2^s.
	invTableModPow = 4
)

// InversePow2 returns y such that x*y ≡ 1 (mod 2^mpow).
//
// x must be odd and smaller than 2^mpow; callers holding a larger value pass
// x mod 2^mpow instead. The result is NOT reduced: it is valid modulo some
// power of two at least as large as 2^mpow, and the caller masks it with
// 2^mpow - 1 when a canonical value is needed.
//
// The inverse table seeds a value valid mod 16. Each Newton step
//
//	y' = y * (2 - x*y)
//
// doubles the exponent of the modulus the value is valid for, so a 64 bit
// word needs at most four steps. All arithmetic wraps modulo the word size,
// which is harmless because only the low mpow bits are ever observed.
func InversePow2[N constraints.Unsigned](x N, mpow uint) N {
	inverse := N(invTableMod16[(x&(invTableMod-1))>>1])

	if mpow <= invTableModPow {
		return inverse
	}

	for goingPow := uint(invTableModPow * 2); ; goingPow <<= 1 {
		inverse *= 2 - x*inverse

		if goingPow >= mpow {
			return inverse
		}
	}
}

// InverseMod returns the inverse of odd x modulo the power of two m, reduced
// into [0, m). x must be smaller than m.
func InverseMod[N constraints.Unsigned](x N, m N) N {
	if m <= invTableMod {
		return N(invTableMod16[(x&(invTableMod-1))>>1]) & (m - 1)
	}

	return InversePow2(x, TrailingZeros(m)) & (m - 1)
}
