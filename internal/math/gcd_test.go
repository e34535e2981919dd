package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreatestCommonDivisor(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{0, 5, 5},
		{5, 0, 5},
		{17, 4, 1},
		{24, 16, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GreatestCommonDivisor(tt.a, tt.b), "gcd(%d, %d)", tt.a, tt.b)
	}
}

func TestTrailingZeros(t *testing.T) {
	assert.Equal(t, uint(0), TrailingZeros[uint8](1))
	assert.Equal(t, uint(3), TrailingZeros[uint16](24))
	assert.Equal(t, uint(63), TrailingZeros(uint64(1)<<63))
	assert.Equal(t, uint(64), TrailingZeros[uint32](0))
}

func TestIsPow2(t *testing.T) {
	for _, x := range []uint64{1, 2, 4, 1024, 1 << 63} {
		assert.True(t, IsPow2(x), "%d", x)
	}

	for _, x := range []uint64{0, 3, 6, 12, 1<<63 + 1, ^uint64(0)} {
		assert.False(t, IsPow2(x), "%d", x)
	}
}
