package align

import (
	"errors"
	"fmt"

	"github.com/davejbax/alignoff/internal/math"
	"golang.org/x/exp/constraints"
)

var (
	ErrNotPowerOfTwo = errors.New("alignment is not a power of two")
	ErrUnreachable   = errors.New("alignment is unreachable with this stride")
)

// OffsetChecked is [Offset] for callers that cannot guarantee the alignment
// precondition. It reports an invalid alignment as ErrNotPowerOfTwo and an
// unsatisfiable request as ErrUnreachable instead of returning the sentinel.
func OffsetChecked[N constraints.Unsigned](addr N, stride N, alignment N) (N, error) {
	return SolveChecked(MethodHensel, addr, stride, alignment)
}

// SolveChecked is [OffsetChecked] with an explicit choice of solver.
func SolveChecked[N constraints.Unsigned](method Method, addr N, stride N, alignment N) (N, error) {
	if !math.IsPow2(alignment) {
		return 0, fmt.Errorf("cannot align to %d: %w", alignment, ErrNotPowerOfTwo)
	}

	offset := Solve(method, addr, stride, alignment)
	if offset == Unreachable[N]() {
		return 0, fmt.Errorf("cannot align 0x%x to %d with stride %d: %w", addr, alignment, stride, ErrUnreachable)
	}

	return offset, nil
}
