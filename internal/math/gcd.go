package math

import "golang.org/x/exp/constraints"

func GreatestCommonDivisor[N constraints.Unsigned](a N, b N) N {
	for b != 0 {
		b, a = a%b, b
	}

	return a
}
