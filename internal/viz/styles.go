package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles derived from CurrentTheme. SetTheme rebuilds them.
var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	AxisLabel   lipgloss.Style
	MetricValue lipgloss.Style
	MetricLabel lipgloss.Style
	KeyHint     lipgloss.Style

	// checkerboard cell backgrounds
	CellLight lipgloss.Style
	CellDark  lipgloss.Style

	// occupancy shades, low to high
	OccupancyLow  lipgloss.Style
	OccupancyMid  lipgloss.Style
	OccupancyHigh lipgloss.Style

	Current lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	CurrentTheme = t

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	AxisLabel = lipgloss.NewStyle().Foreground(t.Muted)

	MetricValue = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)
	MetricLabel = lipgloss.NewStyle().Foreground(t.Muted)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	CellLight = lipgloss.NewStyle().Background(t.CellLight)
	CellDark = lipgloss.NewStyle().Background(t.CellDark)

	OccupancyLow = lipgloss.NewStyle().Foreground(t.Low)
	OccupancyMid = lipgloss.NewStyle().Foreground(t.Mid)
	OccupancyHigh = lipgloss.NewStyle().Foreground(t.High)

	Current = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.CellDark)
}

// OccupancyStyle picks a shade for the share of time spent in a cell.
func OccupancyStyle(share float64) lipgloss.Style {
	if share > 0.5 {
		return OccupancyHigh
	} else if share > 0.2 {
		return OccupancyMid
	}
	return OccupancyLow
}

// Separator draws a horizontal rule.
func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
