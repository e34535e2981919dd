package align_test

import (
	"errors"
	"fmt"

	"github.com/davejbax/alignoff/internal/align"
)

func ExampleOffset() {
	// Elements of 24 bytes starting at 0x1008: one element in, the address
	// is 0x1020, a multiple of 16
	fmt.Println(align.Offset[uint64](0x1008, 24, 16))

	// Zero-sized elements never move the address
	fmt.Println(align.Offset[uint64](0x1005, 0, 16) == align.Unreachable[uint64]())

	// Output:
	// 1
	// true
}

func ExampleOffsetChecked() {
	_, err := align.OffsetChecked[uint32](0x1001, 2, 8)
	fmt.Println(errors.Is(err, align.ErrUnreachable))

	_, err = align.OffsetChecked[uint32](0x1000, 4, 12)
	fmt.Println(errors.Is(err, align.ErrNotPowerOfTwo))

	// Output:
	// true
	// true
}
