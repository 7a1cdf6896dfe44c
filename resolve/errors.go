package resolve

import (
	"fmt"

	"github.com/katalvlaran/gridwave/grid"
)

// Kind identifies which of the three ways a resolve can fail to produce
// a CollapsedGrid.
type Kind int

const (
	// InitContradiction: pre-seeded cells already leave some uncollapsed
	// cell with zero remaining options before any collapse runs.
	InitContradiction Kind = iota
	// CollapseContradiction: the queue handed back a position whose cell
	// already has zero remaining options by the time it's selected.
	CollapseContradiction
	// PropagationContradiction: cascading an option removal through the
	// grid left some neighbour with zero remaining options.
	PropagationContradiction
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case InitContradiction:
		return "init contradiction"
	case CollapseContradiction:
		return "collapse contradiction"
	case PropagationContradiction:
		return "propagation contradiction"
	default:
		return "unknown contradiction"
	}
}

// Sentinel errors, one per Kind, so callers can errors.Is against a
// specific failure mode without inspecting a CollapseError's fields.
var (
	ErrInitContradiction        = fmt.Errorf("resolve: %s", InitContradiction)
	ErrCollapseContradiction    = fmt.Errorf("resolve: %s", CollapseContradiction)
	ErrPropagationContradiction = fmt.Errorf("resolve: %s", PropagationContradiction)
)

// CollapseError reports exactly where and when a resolve failed: the
// position and the iteration count at which the contradiction occurred.
type CollapseError struct {
	Kind      Kind
	Pos       grid.Position
	Iteration int
}

// Error implements the error interface.
func (e *CollapseError) Error() string {
	return fmt.Sprintf("resolve: %s at %v (iteration %d)", e.Kind, e.Pos, e.Iteration)
}

// Unwrap lets errors.Is(err, resolve.ErrPropagationContradiction) (etc.)
// identify the failure kind.
func (e *CollapseError) Unwrap() error {
	switch e.Kind {
	case InitContradiction:
		return ErrInitContradiction
	case CollapseContradiction:
		return ErrCollapseContradiction
	case PropagationContradiction:
		return ErrPropagationContradiction
	default:
		return nil
	}
}
