package measure

import (
	"fmt"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

// CombinedLabel names the row computed over every trajectory at once.
const CombinedLabel = "combined"

// Row is one line of a report: a label and the measures behind it.
type Row struct {
	Label    string   `json:"label"`
	Measures Measures `json:"measures"`
}

// Report holds one row per trajectory followed by a combined row.
type Report struct {
	Rows []Row `json:"rows"`
}

// Combined returns the row computed over all trajectories.
func (r Report) Combined() Row {
	return r.Rows[len(r.Rows)-1]
}

// BuildReport computes measures for each trajectory on its own and for the whole set.
// Trajectories without an ID are labelled by position.
func BuildReport[X, Y comparable](trajs []*grid.Trajectory[X, Y], opts ...Option) (Report, error) {
	// Any failure surfaces here first, with the index of the offending trajectory.
	combined, err := Compute(trajs, opts...)
	if err != nil {
		return Report{}, err
	}

	rows := make([]Row, 0, len(trajs)+1)
	for i, t := range trajs {
		m, err := Compute([]*grid.Trajectory[X, Y]{t}, opts...)
		if err != nil {
			return Report{}, err
		}
		rows = append(rows, Row{Label: rowLabel(i, t), Measures: m})
	}
	rows = append(rows, Row{Label: CombinedLabel, Measures: combined})
	return Report{Rows: rows}, nil
}

func rowLabel[X, Y comparable](i int, t *grid.Trajectory[X, Y]) string {
	if t.ID() != "" {
		return t.ID()
	}
	return fmt.Sprintf("trajectory_%d", i+1)
}
