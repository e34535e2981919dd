package align

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects one of the interchangeable solvers behind [Solve].
type Method int

const (
	// MethodHensel tracks the exponent of the modulus and leaves the
	// inverse unreduced until the final mask.
	MethodHensel Method = iota

	// MethodReduced inverts modulo the full alignment and reduces the
	// inverse before multiplying.
	MethodReduced
)

var ErrUnknownMethod = errors.New("unknown solver method")

var methodNames = map[Method]string{
	MethodHensel:  "hensel",
	MethodReduced: "reduced",
}

// Methods lists every solver, in declaration order.
func Methods() []Method {
	return []Method{MethodHensel, MethodReduced}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

func ParseMethod(name string) (Method, error) {
	for method, methodName := range methodNames {
		if strings.EqualFold(name, methodName) {
			return method, nil
		}
	}

	return 0, fmt.Errorf("could not parse method '%s': %w", name, ErrUnknownMethod)
}
