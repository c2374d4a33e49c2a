// Package measure computes state space grid measures over one or more trajectories.
//
// Every multi-trajectory measure is the mean, across trajectories, of a
// per-trajectory quantity. The only exception is TotalStateRange, which counts
// the distinct states visited by the whole set.
package measure

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

var (
	// ErrInsufficientData indicates a per-trajectory mean with nothing to average,
	// as happens for a trajectory with no events.
	ErrInsufficientData = errors.New("measure: trajectory has no events to average")

	// ErrDegenerateStateSpace indicates dispersion requested on a 1x1 grid.
	ErrDegenerateStateSpace = errors.New("measure: dispersion is undefined for a state space with a single cell")
)

// Measures is the report for a set of trajectories.
type Measures struct {
	MeanTrajectoryDuration float64 `json:"mean_trajectory_duration" yaml:"mean_trajectory_duration"`
	MeanNumberOfEvents     float64 `json:"mean_number_of_events" yaml:"mean_number_of_events"`
	MeanNumberOfVisits     float64 `json:"mean_number_of_visits" yaml:"mean_number_of_visits"`
	MeanStateRange         float64 `json:"mean_state_range" yaml:"mean_state_range"`
	TotalStateRange        int     `json:"total_state_range" yaml:"total_state_range"`
	MeanEventDuration      float64 `json:"mean_event_duration" yaml:"mean_event_duration"`
	MeanVisitDuration      float64 `json:"mean_visit_duration" yaml:"mean_visit_duration"`
	MeanStateDuration      float64 `json:"mean_state_duration" yaml:"mean_state_duration"`
	MeanDispersion         float64 `json:"mean_dispersion" yaml:"mean_dispersion"`
}

// Field is one named value of a Measures record.
type Field struct {
	Name  string
	Value float64
}

// FieldNames lists the measure names in report column order.
var FieldNames = []string{
	"mean_trajectory_duration",
	"mean_number_of_events",
	"mean_number_of_visits",
	"mean_state_range",
	"total_state_range",
	"mean_event_duration",
	"mean_visit_duration",
	"mean_state_duration",
	"mean_dispersion",
}

// Fields flattens the record into table order.
func (m Measures) Fields() []Field {
	values := []float64{
		m.MeanTrajectoryDuration,
		m.MeanNumberOfEvents,
		m.MeanNumberOfVisits,
		m.MeanStateRange,
		float64(m.TotalStateRange),
		m.MeanEventDuration,
		m.MeanVisitDuration,
		m.MeanStateDuration,
		m.MeanDispersion,
	}
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Name: FieldNames[i], Value: v}
	}
	return fields
}

// FromFields rebuilds a record from named values, as read back from a table.
func FromFields(fields []Field) (Measures, error) {
	var m Measures
	targets := map[string]*float64{
		"mean_trajectory_duration": &m.MeanTrajectoryDuration,
		"mean_number_of_events":    &m.MeanNumberOfEvents,
		"mean_number_of_visits":    &m.MeanNumberOfVisits,
		"mean_state_range":         &m.MeanStateRange,
		"mean_event_duration":      &m.MeanEventDuration,
		"mean_visit_duration":      &m.MeanVisitDuration,
		"mean_state_duration":      &m.MeanStateDuration,
		"mean_dispersion":          &m.MeanDispersion,
	}
	for _, f := range fields {
		if f.Name == "total_state_range" {
			m.TotalStateRange = int(f.Value)
			continue
		}
		dst, ok := targets[f.Name]
		if !ok {
			return Measures{}, fmt.Errorf("unknown measure: %s", f.Name)
		}
		*dst = f.Value
	}
	return m, nil
}

// Compute validates the trajectories once and derives all nine measures.
func Compute[X, Y comparable](trajs []*grid.Trajectory[X, Y], opts ...Option) (Measures, error) {
	o := buildOptions(opts)
	if err := grid.Validate(trajs...); err != nil {
		return Measures{}, err
	}

	var (
		m   Measures
		err error
	)
	m.MeanTrajectoryDuration = meanTrajectoryDuration(trajs)
	m.MeanNumberOfEvents = meanNumberOfEvents(trajs)
	m.MeanNumberOfVisits = meanNumberOfVisits(trajs)
	m.MeanStateRange = meanStateRange(trajs)
	m.TotalStateRange = totalStateRange(trajs)
	if m.MeanEventDuration, err = meanEventDuration(trajs); err != nil {
		return Measures{}, err
	}
	if m.MeanVisitDuration, err = meanVisitDuration(trajs); err != nil {
		return Measures{}, err
	}
	if m.MeanStateDuration, err = meanStateDuration(trajs); err != nil {
		return Measures{}, err
	}
	if m.MeanDispersion, err = meanDispersion(trajs, o.exact); err != nil {
		return Measures{}, err
	}
	return m, nil
}

func MeanTrajectoryDuration[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanTrajectoryDuration(trajs), nil
}

func MeanNumberOfEvents[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanNumberOfEvents(trajs), nil
}

func MeanNumberOfVisits[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanNumberOfVisits(trajs), nil
}

func MeanStateRange[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanStateRange(trajs), nil
}

func TotalStateRange[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (int, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return totalStateRange(trajs), nil
}

func MeanEventDuration[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanEventDuration(trajs)
}

func MeanVisitDuration[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanVisitDuration(trajs)
}

func MeanStateDuration[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanStateDuration(trajs)
}

// MeanDispersion averages Dispersion across trajectories.
func MeanDispersion[X, Y comparable](trajs ...*grid.Trajectory[X, Y]) (float64, error) {
	if err := grid.Validate(trajs...); err != nil {
		return 0, err
	}
	return meanDispersion(trajs, false)
}

func meanOver[X, Y comparable](trajs []*grid.Trajectory[X, Y], f func(*grid.Trajectory[X, Y]) float64) float64 {
	values := make([]float64, len(trajs))
	for i, t := range trajs {
		values[i] = f(t)
	}
	return stat.Mean(values, nil)
}

// meanOfMeans averages, across trajectories, the within-trajectory mean of the
// samples returned by f.
func meanOfMeans[X, Y comparable](trajs []*grid.Trajectory[X, Y], what string, f func(*grid.Trajectory[X, Y]) []float64) (float64, error) {
	means := make([]float64, len(trajs))
	for i, t := range trajs {
		samples := f(t)
		if len(samples) == 0 {
			return 0, &grid.TrajectoryError{
				Index:   i,
				ID:      t.ID(),
				Wrapped: fmt.Errorf("%w: no %s", ErrInsufficientData, what),
			}
		}
		means[i] = stat.Mean(samples, nil)
	}
	return stat.Mean(means, nil), nil
}

func meanTrajectoryDuration[X, Y comparable](trajs []*grid.Trajectory[X, Y]) float64 {
	return meanOver(trajs, func(t *grid.Trajectory[X, Y]) float64 { return t.Duration() })
}

func meanNumberOfEvents[X, Y comparable](trajs []*grid.Trajectory[X, Y]) float64 {
	return meanOver(trajs, func(t *grid.Trajectory[X, Y]) float64 { return float64(t.Len()) })
}

func meanNumberOfVisits[X, Y comparable](trajs []*grid.Trajectory[X, Y]) float64 {
	return meanOver(trajs, func(t *grid.Trajectory[X, Y]) float64 { return float64(len(t.Visits())) })
}

func meanStateRange[X, Y comparable](trajs []*grid.Trajectory[X, Y]) float64 {
	return meanOver(trajs, func(t *grid.Trajectory[X, Y]) float64 { return float64(len(t.DistinctStates())) })
}

func totalStateRange[X, Y comparable](trajs []*grid.Trajectory[X, Y]) int {
	union := make(map[grid.State[X, Y]]struct{})
	for _, t := range trajs {
		for _, s := range t.DistinctStates() {
			union[s] = struct{}{}
		}
	}
	return len(union)
}

func meanEventDuration[X, Y comparable](trajs []*grid.Trajectory[X, Y]) (float64, error) {
	return meanOfMeans(trajs, "event durations", (*grid.Trajectory[X, Y]).EventDurations)
}

func meanVisitDuration[X, Y comparable](trajs []*grid.Trajectory[X, Y]) (float64, error) {
	return meanOfMeans(trajs, "visit durations", (*grid.Trajectory[X, Y]).VisitDurations)
}

func meanStateDuration[X, Y comparable](trajs []*grid.Trajectory[X, Y]) (float64, error) {
	return meanOfMeans(trajs, "state durations", occupancy[X, Y])
}

func meanDispersion[X, Y comparable](trajs []*grid.Trajectory[X, Y], exact bool) (float64, error) {
	values := make([]float64, len(trajs))
	for i, t := range trajs {
		var (
			d   float64
			err error
		)
		if exact {
			d, err = dispersionExactFloat(t)
		} else {
			d, err = Dispersion(t)
		}
		if err != nil {
			return 0, &grid.TrajectoryError{Index: i, ID: t.ID(), Wrapped: err}
		}
		values[i] = d
	}
	return stat.Mean(values, nil), nil
}
