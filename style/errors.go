package style

import (
	"errors"
	"strings"
)

// ErrInheritanceCycle is returned when a style inherits from itself,
// directly or through other styles.
var ErrInheritanceCycle = errors.New("style: inheritance cycle")

// CycleError reports the chain of style names that forms a cycle.
type CycleError struct {
	// Chain lists style names in visiting order; the last name repeats an
	// earlier one.
	Chain []string
}

func (e *CycleError) Error() string {
	return "style: inheritance cycle: " + strings.Join(e.Chain, " -> ")
}

// Unwrap makes errors.Is(err, ErrInheritanceCycle) hold.
func (e *CycleError) Unwrap() error {
	return ErrInheritanceCycle
}
