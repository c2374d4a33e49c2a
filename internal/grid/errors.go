package grid

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory construction and comparison.
var (
	// ErrEmptyInput indicates no trajectories were supplied where at least one is required.
	ErrEmptyInput = errors.New("grid: at least one trajectory is required")

	// ErrMalformedState indicates a state entry that is not an (x, y) pair.
	ErrMalformedState = errors.New("grid: states must be (x, y) pairs")

	// ErrEventCountMismatch indicates len(states) != len(times)-1.
	ErrEventCountMismatch = errors.New("grid: number of states must equal number of timestamps minus 1")

	// ErrInvalidTimestamp indicates a timestamp that is not a finite number.
	ErrInvalidTimestamp = errors.New("grid: timestamps must be finite numbers")

	// ErrOutOfRangeState indicates a state coordinate absent from its axis range.
	ErrOutOfRangeState = errors.New("grid: state falls outside the x and y ranges")

	// ErrNonMonotonicTime indicates timestamps that are not strictly increasing.
	ErrNonMonotonicTime = errors.New("grid: timestamps must be strictly ascending")

	// ErrDuplicateLabel indicates a repeated label within one axis range.
	ErrDuplicateLabel = errors.New("grid: axis range labels must be unique")

	// ErrStateSpaceMismatch indicates trajectories whose range sets differ.
	ErrStateSpaceMismatch = errors.New("grid: state spaces of all trajectories must match")

	// ErrStateSpaceOrder indicates trajectories whose ranges match as sets but not in order.
	ErrStateSpaceOrder = errors.New("grid: state order must be the same in all state spaces")
)

// TrajectoryError wraps an error with the position of the offending trajectory
// in the collection being compared.
type TrajectoryError struct {
	Index   int
	ID      string
	Wrapped error
}

func (e *TrajectoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("trajectory %d (%s): %v", e.Index, e.ID, e.Wrapped)
	}
	return fmt.Sprintf("trajectory %d: %v", e.Index, e.Wrapped)
}

func (e *TrajectoryError) Unwrap() error {
	return e.Wrapped
}
