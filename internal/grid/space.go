package grid

import "fmt"

// State is one cell of the grid: a label from each axis.
type State[X, Y comparable] struct {
	X X
	Y Y
}

func (s State[X, Y]) String() string {
	return fmt.Sprintf("(%v, %v)", s.X, s.Y)
}

// StateSpace is the ordered pair of categorical axes a trajectory lives in.
// The order of each range is significant and is preserved as given.
type StateSpace[X, Y comparable] struct {
	xRange []X
	yRange []Y
	xIndex map[X]int
	yIndex map[Y]int
}

// NewStateSpace copies the ranges and checks that labels are unique per axis.
func NewStateSpace[X, Y comparable](xRange []X, yRange []Y) (*StateSpace[X, Y], error) {
	xIndex, err := indexLabels(xRange)
	if err != nil {
		return nil, fmt.Errorf("x range: %w", err)
	}
	yIndex, err := indexLabels(yRange)
	if err != nil {
		return nil, fmt.Errorf("y range: %w", err)
	}
	return &StateSpace[X, Y]{
		xRange: append([]X(nil), xRange...),
		yRange: append([]Y(nil), yRange...),
		xIndex: xIndex,
		yIndex: yIndex,
	}, nil
}

func indexLabels[L comparable](labels []L) (map[L]int, error) {
	index := make(map[L]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLabel, l)
		}
		index[l] = i
	}
	return index, nil
}

func (s *StateSpace[X, Y]) XRange() []X { return append([]X(nil), s.xRange...) }
func (s *StateSpace[X, Y]) YRange() []Y { return append([]Y(nil), s.yRange...) }

// Size is the number of cells in the grid, visited or not.
func (s *StateSpace[X, Y]) Size() int {
	return len(s.xRange) * len(s.yRange)
}

// XIndex returns the ordinal position of x along the x axis.
func (s *StateSpace[X, Y]) XIndex(x X) (int, bool) {
	i, ok := s.xIndex[x]
	return i, ok
}

// YIndex returns the ordinal position of y along the y axis.
func (s *StateSpace[X, Y]) YIndex(y Y) (int, bool) {
	i, ok := s.yIndex[y]
	return i, ok
}

func (s *StateSpace[X, Y]) Contains(st State[X, Y]) bool {
	_, okX := s.xIndex[st.X]
	_, okY := s.yIndex[st.Y]
	return okX && okY
}

// sameSet reports whether a holds exactly the labels in union.
func sameSet[L comparable](a []L, union map[L]struct{}) bool {
	if len(a) != len(union) {
		return false
	}
	for _, l := range a {
		if _, ok := union[l]; !ok {
			return false
		}
	}
	return true
}

func samePrefixOrder[L comparable](a, b []L) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
