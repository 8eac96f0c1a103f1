package suggest

import "fmt"

// NewEngine returns a fresh engine by its config name.
func NewEngine(kind string) (Engine, error) {
	switch kind {
	case "ternary":
		return NewTernaryEngine(), nil
	case "sorted":
		return NewSortedEngine(), nil
	case "radix":
		return NewRadixEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine type %q", kind)
	}
}
