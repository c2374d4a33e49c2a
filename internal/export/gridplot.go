// Package export writes state space grids as images.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/viz"
)

var ErrNoPaths = errors.New("export: nothing to draw")

// PlotOptions configures the grid image. Zero sizes use 6x6 inches.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

var (
	cellLight = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	cellDark  = color.RGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}
)

// NewGridPlot draws each path as a line through its visits, one marker per
// visit with area proportional to its duration. Paths are shifted slightly
// apart inside each cell so overlapping trajectories stay readable.
func NewGridPlot[X, Y comparable](paths []viz.Path[X, Y], opts PlotOptions) (*plot.Plot, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	space := paths[0].Space()
	xs, ys := space.XRange(), space.YRange()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Min, p.X.Max = -0.5, float64(len(xs))-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(len(ys))-0.5
	p.X.Tick.Marker = labelTicks(xs)
	p.Y.Tick.Marker = labelTicks(ys)

	for i := range xs {
		for j := range ys {
			cell, err := plotter.NewPolygon(plotter.XYs{
				{X: float64(i) - 0.5, Y: float64(j) - 0.5},
				{X: float64(i) + 0.5, Y: float64(j) - 0.5},
				{X: float64(i) + 0.5, Y: float64(j) + 0.5},
				{X: float64(i) - 0.5, Y: float64(j) + 0.5},
			})
			if err != nil {
				return nil, err
			}
			cell.Color = cellLight
			if (i+j)%2 == 1 {
				cell.Color = cellDark
			}
			cell.LineStyle.Width = 0
			p.Add(cell)
		}
	}

	longest := 0.0
	for _, path := range paths {
		for _, d := range path.VisitDurations() {
			longest = math.Max(longest, d)
		}
	}

	colors := palette(len(paths))
	for k, path := range paths {
		visits := path.Visits()
		if len(visits) == 0 {
			continue
		}
		shift := offset(k, len(paths))
		pts := make(plotter.XYs, len(visits))
		for i, v := range visits {
			xi, _ := space.XIndex(v.X)
			yi, _ := space.YIndex(v.Y)
			pts[i] = plotter.XY{X: float64(xi) + shift, Y: float64(yi) + shift}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = colors[k]
		line.Width = vg.Points(1)

		durations := path.VisitDurations()
		markers, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		markers.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			r := 2.0
			if longest > 0 {
				r += 8 * math.Sqrt(durations[i]/longest)
			}
			return draw.GlyphStyle{Color: colors[k], Radius: vg.Points(r), Shape: draw.CircleGlyph{}}
		}

		p.Add(line, markers)
		p.Legend.Add(pathLabel(path, k), line)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	return p, nil
}

// WriteGrid renders the grid to w in the given format: svg, png, pdf, eps, jpg or tiff.
func WriteGrid[X, Y comparable](w io.Writer, paths []viz.Path[X, Y], opts PlotOptions, format string) error {
	p, err := NewGridPlot(paths, opts)
	if err != nil {
		return err
	}
	width, height := size(opts)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveGrid writes the grid to a file, choosing the format from its extension.
func SaveGrid[X, Y comparable](file string, paths []viz.Path[X, Y], opts PlotOptions) error {
	if filepath.Ext(file) == "" {
		return fmt.Errorf("export: %s has no extension to pick a format from", file)
	}
	p, err := NewGridPlot(paths, opts)
	if err != nil {
		return err
	}
	width, height := size(opts)
	return p.Save(width, height, file)
}

func size(opts PlotOptions) (vg.Length, vg.Length) {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 6 * vg.Inch
	}
	if height <= 0 {
		height = 6 * vg.Inch
	}
	return width, height
}

func labelTicks[L any](labels []L) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprint(l)}
	}
	return ticks
}

func offset(k, n int) float64 {
	if n <= 1 {
		return 0
	}
	return 0.5 * (float64(k)/float64(n-1) - 0.5)
}

func pathLabel[X, Y comparable](p viz.Path[X, Y], k int) string {
	if id := strings.TrimSpace(p.ID()); id != "" {
		return id
	}
	return fmt.Sprintf("trajectory_%d", k+1)
}

// palette spreads n colors around the hue wheel.
func palette(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		h := float64(i) / float64(max(n, 1))
		r, g, b := hueToRGB(h)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

func hueToRGB(h float64) (uint8, uint8, uint8) {
	channel := func(shift float64) uint8 {
		v := math.Abs(math.Mod(h*6+shift, 6)-3) - 1
		v = math.Max(0, math.Min(1, v))
		return uint8(40 + 170*v)
	}
	return channel(0), channel(4), channel(2)
}
