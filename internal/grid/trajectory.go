package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Trajectory is a sequence of states occupied over time within one state space.
// Times are fenceposts: times[i] and times[i+1] bound the duration of states[i],
// so there is always one more timestamp than there are states.
//
// A Trajectory is immutable after New returns; accessors hand out copies.
type Trajectory[X, Y comparable] struct {
	id     string
	space  *StateSpace[X, Y]
	states []State[X, Y]
	times  []float64
}

type Option func(*options)

type options struct {
	id string
}

// WithID labels the trajectory in reports and error messages.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// New copies the inputs and validates them eagerly.
func New[X, Y comparable](space *StateSpace[X, Y], states []State[X, Y], times []float64, opts ...Option) (*Trajectory[X, Y], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if space == nil {
		return nil, fmt.Errorf("grid: nil state space")
	}

	t := &Trajectory[X, Y]{
		id:     o.id,
		space:  space,
		states: append([]State[X, Y](nil), states...),
		times:  append([]float64(nil), times...),
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

// Default returns a trajectory with no observed events over a 4x4 grid
// labelled 1..4 on each axis. Every call builds fresh slices.
func Default() *Trajectory[int, int] {
	space, _ := NewStateSpace([]int{1, 2, 3, 4}, []int{1, 2, 3, 4})
	return &Trajectory[int, int]{
		space:  space,
		states: []State[int, int]{},
		times:  []float64{0},
	}
}

func (t *Trajectory[X, Y]) check() error {
	if len(t.states) != len(t.times)-1 {
		return fmt.Errorf("%w: got %d states and %d timestamps", ErrEventCountMismatch, len(t.states), len(t.times))
	}
	for i, v := range t.times {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: times[%d] = %v", ErrInvalidTimestamp, i, v)
		}
	}
	for i, s := range t.states {
		if !t.space.Contains(s) {
			return fmt.Errorf("%w: states[%d] = %v", ErrOutOfRangeState, i, s)
		}
	}
	for i := 1; i < len(t.times); i++ {
		if t.times[i-1] >= t.times[i] {
			return fmt.Errorf("%w: times[%d] = %v, times[%d] = %v", ErrNonMonotonicTime, i-1, t.times[i-1], i, t.times[i])
		}
	}
	return nil
}

func (t *Trajectory[X, Y]) ID() string { return t.id }
func (t *Trajectory[X, Y]) Space() *StateSpace[X, Y] { return t.space }
func (t *Trajectory[X, Y]) States() []State[X, Y] { return append([]State[X, Y](nil), t.states...) }
func (t *Trajectory[X, Y]) Times() []float64 { return append([]float64(nil), t.times...) }

// Len is the number of events.
func (t *Trajectory[X, Y]) Len() int { return len(t.states) }

// Duration is the time between the first and last fencepost.
func (t *Trajectory[X, Y]) Duration() float64 {
	return t.times[len(t.times)-1] - t.times[0]
}

// PairStates turns raw rows into states. Each row must hold exactly two labels.
func PairStates[L comparable](rows [][]L) ([]State[L, L], error) {
	states := make([]State[L, L], 0, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d values", ErrMalformedState, i, len(row))
		}
		states = append(states, State[L, L]{X: row[0], Y: row[1]})
	}
	return states, nil
}

// ParseTimes converts textual timestamps, rejecting anything that is not a finite number.
func ParseTimes(cells []string) ([]float64, error) {
	times := make([]float64, 0, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: times[%d] = %q", ErrInvalidTimestamp, i, c)
		}
		times = append(times, v)
	}
	return times, nil
}
