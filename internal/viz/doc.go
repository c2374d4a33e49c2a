// Package viz draws state space grids in the terminal.
//
//   - [RenderGrid]: the grid with time spent per cell, summed over paths
//   - [RenderTimeline]: visit durations per path as an ASCII plot
//   - [Browser]: Bubble Tea model for stepping through trajectories and visits
//
// # Key Bindings
//
//	←/→ h/l  previous/next trajectory
//	↑/↓ k/j  previous/next visit
//	g/G      first/last visit
//	c        toggle the combined measures
//	t        cycle color themes
//	q        quit
package viz
