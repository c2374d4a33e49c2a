package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Magenta,
	asciigraph.Red,
	asciigraph.Blue,
}

// RenderTimeline plots the duration of each successive visit, one series per
// path. Paths without visits are left out.
func RenderTimeline[X, Y comparable](paths []Path[X, Y], width, height int) (string, error) {
	var (
		series [][]float64
		colors []asciigraph.AnsiColor
		names  []string
	)
	for i, p := range paths {
		d := p.VisitDurations()
		if len(d) == 0 {
			continue
		}
		series = append(series, d)
		colors = append(colors, seriesColors[len(colors)%len(seriesColors)])
		name := p.ID()
		if name == "" {
			name = fmt.Sprintf("trajectory_%d", i+1)
		}
		names = append(names, name)
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no visits to plot")
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
		asciigraph.Caption("visit duration by visit"),
	), nil
}
