package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

// Path is what the renderers need from a trajectory. *grid.Trajectory satisfies it.
type Path[X, Y comparable] interface {
	ID() string
	Space() *grid.StateSpace[X, Y]
	Visits() []grid.State[X, Y]
	VisitDurations() []float64
}

// Paths validates trajectories as a set and adapts them to the rendering interface.
func Paths[X, Y comparable](trajs []*grid.Trajectory[X, Y]) ([]Path[X, Y], error) {
	if err := grid.Validate(trajs...); err != nil {
		return nil, err
	}
	out := make([]Path[X, Y], len(trajs))
	for i, t := range trajs {
		out[i] = t
	}
	return out, nil
}

type GridOptions[X, Y comparable] struct {
	Title     string
	XLabel    string
	YLabel    string
	CellWidth int
	// Highlight marks one cell, e.g. the current visit in the browser.
	Highlight *grid.State[X, Y]
}

// RenderGrid draws the state space with the time spent in each cell, summed
// over every path. Rows run from the last y label at the top to the first at
// the bottom, columns follow the x range.
func RenderGrid[X, Y comparable](paths []Path[X, Y], opts GridOptions[X, Y]) string {
	if len(paths) == 0 {
		return ""
	}
	space := paths[0].Space()
	xs, ys := space.XRange(), space.YRange()

	cw := opts.CellWidth
	if cw <= 0 {
		cw = 7
		for _, x := range xs {
			cw = max(cw, len(fmt.Sprint(x))+2)
		}
	}

	occupied, total := cellTimes(paths)

	yw := 0
	for _, y := range ys {
		yw = max(yw, len(fmt.Sprint(y)))
	}

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(Title.Render(opts.Title) + "\n")
	}
	if opts.YLabel != "" {
		b.WriteString(AxisLabel.Render(opts.YLabel) + "\n")
	}

	for row := len(ys) - 1; row >= 0; row-- {
		y := ys[row]
		b.WriteString(AxisLabel.Render(fmt.Sprintf("%*v", yw, y)) + " ")
		for col, x := range xs {
			st := grid.State[X, Y]{X: x, Y: y}
			bg := CellLight
			if (row+col)%2 == 1 {
				bg = CellDark
			}
			b.WriteString(renderCell(st, occupied, total, cw, bg, opts.Highlight))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", yw+1))
	for _, x := range xs {
		b.WriteString(AxisLabel.Render(center(fmt.Sprint(x), cw)))
	}
	b.WriteString("\n")
	if opts.XLabel != "" {
		b.WriteString(strings.Repeat(" ", yw+1) + AxisLabel.Render(center(opts.XLabel, cw*len(xs))) + "\n")
	}
	return b.String()
}

func renderCell[X, Y comparable](st grid.State[X, Y], occupied map[grid.State[X, Y]]float64, total float64, width int, bg lipgloss.Style, highlight *grid.State[X, Y]) string {
	d, ok := occupied[st]
	text := "·"
	style := Subtle
	if ok {
		text = fmt.Sprintf("%.2g", d)
		share := 0.0
		if total > 0 {
			share = d / total
		}
		style = OccupancyStyle(share)
	}
	if highlight != nil && *highlight == st {
		text = "[" + text + "]"
		style = Current
	}
	return bg.Inherit(style).Render(center(text, width))
}

// cellTimes sums visit durations per cell across paths.
func cellTimes[X, Y comparable](paths []Path[X, Y]) (map[grid.State[X, Y]]float64, float64) {
	occupied := make(map[grid.State[X, Y]]float64)
	total := 0.0
	for _, p := range paths {
		durations := p.VisitDurations()
		for i, v := range p.Visits() {
			occupied[v] += durations[i]
			total += durations[i]
		}
	}
	return occupied, total
}

// RenderVisits lists each path's visit sequence on one line.
func RenderVisits[X, Y comparable](paths []Path[X, Y]) string {
	var b strings.Builder
	for i, p := range paths {
		name := p.ID()
		if name == "" {
			name = fmt.Sprintf("trajectory_%d", i+1)
		}
		visits := p.Visits()
		parts := make([]string, len(visits))
		for j, v := range visits {
			parts[j] = v.String()
		}
		b.WriteString(MetricLabel.Render(name+":") + " " + strings.Join(parts, " → ") + "\n")
	}
	return b.String()
}

func center(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
