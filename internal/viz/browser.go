package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
)

// Browser steps through trajectories and their visits on the grid.
type Browser[X, Y comparable] struct {
	paths    []Path[X, Y]
	rows     []measure.Row
	opts     GridOptions[X, Y]
	current  int
	visit    int
	combined bool
	width    int
}

// NewBrowser pairs each path with its report row; rows[len(paths)] is the
// combined row.
func NewBrowser[X, Y comparable](paths []Path[X, Y], report measure.Report, opts GridOptions[X, Y]) *Browser[X, Y] {
	return &Browser[X, Y]{
		paths: paths,
		rows:  report.Rows,
		opts:  opts,
		width: 80,
	}
}

func (b *Browser[X, Y]) Init() tea.Cmd { return nil }

func (b *Browser[X, Y]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "right", "l", "tab":
			b.current = (b.current + 1) % len(b.paths)
			b.visit = 0
		case "left", "h", "shift+tab":
			b.current = (b.current - 1 + len(b.paths)) % len(b.paths)
			b.visit = 0
		case "down", "j":
			if n := len(b.paths[b.current].Visits()); b.visit < n-1 {
				b.visit++
			}
		case "up", "k":
			if b.visit > 0 {
				b.visit--
			}
		case "home", "g":
			b.visit = 0
		case "end", "G":
			b.visit = max(len(b.paths[b.current].Visits())-1, 0)
		case "c":
			b.combined = !b.combined
		case "t":
			NextTheme()
		}
	}
	return b, nil
}

func (b *Browser[X, Y]) View() string {
	if len(b.paths) == 0 {
		return Subtle.Render("no trajectories") + "\n"
	}
	p := b.paths[b.current]
	visits := p.Visits()

	opts := b.opts
	opts.Title = fmt.Sprintf("%s (%d/%d)", b.label(b.current), b.current+1, len(b.paths))
	shown := []Path[X, Y]{p}
	if b.combined {
		opts.Title = measure.CombinedLabel
		shown = b.paths
	} else if len(visits) > 0 {
		opts.Highlight = &visits[b.visit]
	}

	var s strings.Builder
	s.WriteString(RenderGrid(shown, opts))
	s.WriteString("\n")

	if !b.combined && len(visits) > 0 {
		durations := p.VisitDurations()
		s.WriteString(fmt.Sprintf("%s %s  %s %s\n",
			MetricLabel.Render("visit"), MetricValue.Render(fmt.Sprintf("%d/%d", b.visit+1, len(visits))),
			MetricLabel.Render("duration"), MetricValue.Render(fmt.Sprintf("%.4g", durations[b.visit])),
		))
	}

	s.WriteString(Separator(min(b.width, 60)) + "\n")
	if row := b.row(); row != nil {
		var lines []string
		for _, f := range row.Measures.Fields() {
			lines = append(lines, fmt.Sprintf("%-26s %s", MetricLabel.Render(f.Name), MetricValue.Render(fmt.Sprintf("%.4f", f.Value))))
		}
		s.WriteString(Panel.Render(strings.Join(lines, "\n")))
		s.WriteString("\n")
	}

	s.WriteString(KeyHint.Render("←/→ trajectory  ↑/↓ visit  c combined  t theme  q quit"))
	s.WriteString("\n")
	return s.String()
}

func (b *Browser[X, Y]) row() *measure.Row {
	i := b.current
	if b.combined {
		i = len(b.rows) - 1
	}
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return &b.rows[i]
}

func (b *Browser[X, Y]) label(i int) string {
	if i < len(b.rows) && b.rows[i].Label != "" {
		return b.rows[i].Label
	}
	return fmt.Sprintf("trajectory_%d", i+1)
}

// RunBrowser opens the browser in the terminal.
func RunBrowser[X, Y comparable](paths []Path[X, Y], report measure.Report, opts GridOptions[X, Y]) error {
	_, err := tea.NewProgram(NewBrowser(paths, report, opts), tea.WithAltScreen()).Run()
	return err
}
