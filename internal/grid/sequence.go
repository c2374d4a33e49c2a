package grid

// Visits collapses runs of consecutive identical states into a single visit.
func (t *Trajectory[X, Y]) Visits() []State[X, Y] {
	if len(t.states) == 0 {
		return []State[X, Y]{}
	}
	visits := []State[X, Y]{t.states[0]}
	for i := 1; i < len(t.states); i++ {
		if t.states[i] != t.states[i-1] {
			visits = append(visits, t.states[i])
		}
	}
	return visits
}

// VisitBoundaryTimes returns the fenceposts of visits: the first timestamp, every
// timestamp where the state changes, and the final timestamp.
// len(VisitBoundaryTimes()) == len(Visits())+1.
func (t *Trajectory[X, Y]) VisitBoundaryTimes() []float64 {
	bounds := []float64{t.times[0]}
	for i := 1; i < len(t.times); i++ {
		if i == len(t.states) || t.states[i-1] != t.states[i] {
			bounds = append(bounds, t.times[i])
		}
	}
	return bounds
}

// StateDurations sums event durations per distinct visited state.
// States never visited are absent.
func (t *Trajectory[X, Y]) StateDurations() map[State[X, Y]]float64 {
	durations := make(map[State[X, Y]]float64)
	for i, s := range t.states {
		durations[s] += t.times[i+1] - t.times[i]
	}
	return durations
}

// EventDurations returns times[i+1]-times[i] for every event.
func (t *Trajectory[X, Y]) EventDurations() []float64 {
	return diffs(t.times)
}

// VisitDurations returns the length of every visit.
func (t *Trajectory[X, Y]) VisitDurations() []float64 {
	return diffs(t.VisitBoundaryTimes())
}

// DistinctStates returns the visited states in order of first appearance.
func (t *Trajectory[X, Y]) DistinctStates() []State[X, Y] {
	seen := make(map[State[X, Y]]struct{}, len(t.states))
	out := make([]State[X, Y], 0)
	for _, s := range t.states {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func diffs(fenceposts []float64) []float64 {
	if len(fenceposts) < 2 {
		return []float64{}
	}
	out := make([]float64, len(fenceposts)-1)
	for i := range out {
		out[i] = fenceposts[i+1] - fenceposts[i]
	}
	return out
}
