package store

import "fmt"

// Describer is implemented by every record the engine persists. Describe
// returns the column names and their values in the same order; that
// order decides both the SQL text and the bound parameter list.
type Describer interface {
	Describe() (names []string, values []Value)
}

// CheckDescription reports whether names and values form a usable
// column description.
func CheckDescription(names []string, values []Value) error {
	if len(names) != len(values) {
		return fmt.Errorf("%w: %d names for %d values", ErrInvalidDescription, len(names), len(values))
	}

	if len(names) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidDescription)
	}

	if dup, ok := firstDuplicate(names); ok {
		return fmt.Errorf("%w: column %q listed more than once", ErrInvalidDescription, dup)
	}

	for i, v := range values {
		if v.Kind() == KindInvalid {
			return fmt.Errorf("%w: column %q has no value", ErrInvalidDescription, names[i])
		}
	}

	return nil
}
