package align

import "unsafe"

// PointerOffset returns the number of T elements to advance p by so that it
// lands on a multiple of alignment, or [Unreachable] if that is impossible.
// The stride is the size of T. p is converted to its numeric address only and
// is never dereferenced.
func PointerOffset[T any](p *T, alignment uintptr) uintptr {
	var zero T

	addr := uintptr(unsafe.Pointer(p)) //nolint:gosec // address arithmetic only
	return Offset(addr, unsafe.Sizeof(zero), alignment)
}
