package align_test

import (
	"testing"
	"unsafe"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/stretchr/testify/assert"
)

type rgb [3]byte

func TestPointerOffset(t *testing.T) {
	var pixels [32]rgb

	for i := range pixels {
		p := &pixels[i]
		offset := align.PointerOffset(p, 16)

		addr := uintptr(unsafe.Pointer(p))
		assert.Less(t, offset, uintptr(16))
		assert.Zero(t, (addr+offset*unsafe.Sizeof(*p))%16, "element %d at %#x", i, addr)
	}
}

func TestPointerOffsetZeroSized(t *testing.T) {
	var empty struct{}

	addr := uintptr(unsafe.Pointer(&empty))
	offset := align.PointerOffset(&empty, 64)

	if addr%64 == 0 {
		assert.Zero(t, offset)
	} else {
		assert.Equal(t, align.Unreachable[uintptr](), offset)
	}
}

func TestPointerOffsetWideElements(t *testing.T) {
	words := make([]uint64, 8)

	// uint64 slices are 8 byte aligned, so a 64 byte boundary is always
	// reachable within 8 elements
	addr := uintptr(unsafe.Pointer(&words[0]))
	offset := align.PointerOffset(&words[0], 64)

	assert.Less(t, offset, uintptr(8))
	assert.True(t, align.IsAligned(addr+offset*8, 64))
}
