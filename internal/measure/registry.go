package measure

import (
	"fmt"
	"sort"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

// Func computes one named measure over a set of trajectories.
type Func[X, Y comparable] func(trajs ...*grid.Trajectory[X, Y]) (float64, error)

// Registry maps measure names to their functions.
type Registry[X, Y comparable] struct {
	measures map[string]Func[X, Y]
}

func NewRegistry[X, Y comparable]() *Registry[X, Y] {
	r := &Registry[X, Y]{
		measures: make(map[string]Func[X, Y]),
	}

	r.measures["mean_trajectory_duration"] = MeanTrajectoryDuration[X, Y]
	r.measures["mean_number_of_events"] = MeanNumberOfEvents[X, Y]
	r.measures["mean_number_of_visits"] = MeanNumberOfVisits[X, Y]
	r.measures["mean_state_range"] = MeanStateRange[X, Y]
	r.measures["total_state_range"] = func(trajs ...*grid.Trajectory[X, Y]) (float64, error) {
		n, err := TotalStateRange(trajs...)
		return float64(n), err
	}
	r.measures["mean_event_duration"] = MeanEventDuration[X, Y]
	r.measures["mean_visit_duration"] = MeanVisitDuration[X, Y]
	r.measures["mean_state_duration"] = MeanStateDuration[X, Y]
	r.measures["mean_dispersion"] = MeanDispersion[X, Y]

	return r
}

func (r *Registry[X, Y]) Get(name string) (Func[X, Y], error) {
	fn, ok := r.measures[name]
	if !ok {
		return nil, fmt.Errorf("unknown measure: %s (available: %v)", name, r.Names())
	}
	return fn, nil
}

// Names lists the registered measures alphabetically.
func (r *Registry[X, Y]) Names() []string {
	names := make([]string, 0, len(r.measures))
	for name := range r.measures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
