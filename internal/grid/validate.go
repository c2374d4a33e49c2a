package grid

// Validate checks that trajectories can be compared: at least one is present,
// every trajectory spans the same label sets, and the labels appear in the same
// order on each axis.
func Validate[X, Y comparable](trajs ...*Trajectory[X, Y]) error {
	if len(trajs) == 0 {
		return ErrEmptyInput
	}

	xUnion := make(map[X]struct{})
	yUnion := make(map[Y]struct{})
	for _, t := range trajs {
		for _, x := range t.space.xRange {
			xUnion[x] = struct{}{}
		}
		for _, y := range t.space.yRange {
			yUnion[y] = struct{}{}
		}
	}
	for i, t := range trajs {
		if !sameSet(t.space.xRange, xUnion) {
			return &TrajectoryError{Index: i, ID: t.id, Wrapped: ErrStateSpaceMismatch}
		}
	}
	for i, t := range trajs {
		if !sameSet(t.space.yRange, yUnion) {
			return &TrajectoryError{Index: i, ID: t.id, Wrapped: ErrStateSpaceMismatch}
		}
	}

	first := trajs[0].space
	for i, t := range trajs[1:] {
		if !samePrefixOrder(first.xRange, t.space.xRange) {
			return &TrajectoryError{Index: i + 1, ID: t.id, Wrapped: ErrStateSpaceOrder}
		}
	}
	for i, t := range trajs[1:] {
		if !samePrefixOrder(first.yRange, t.space.yRange) {
			return &TrajectoryError{Index: i + 1, ID: t.id, Wrapped: ErrStateSpaceOrder}
		}
	}
	return nil
}
