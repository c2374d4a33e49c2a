package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette for the grid, timeline and browser.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	CellLight lipgloss.Color
	CellDark  lipgloss.Color
	Low       lipgloss.Color
	Mid       lipgloss.Color
	High      lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:      "night",
		Primary:   lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#00ccff"),
		Muted:     lipgloss.Color("#666688"),
		Border:    lipgloss.Color("#444466"),
		CellLight: lipgloss.Color("#1c1c2c"),
		CellDark:  lipgloss.Color("#121220"),
		Low:       lipgloss.Color("#ff4444"),
		Mid:       lipgloss.Color("#ffcc00"),
		High:      lipgloss.Color("#00ff88"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00cc00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#005500"),
		CellLight: lipgloss.Color("#002200"),
		CellDark:  lipgloss.Color("#001100"),
		Low:       lipgloss.Color("#006600"),
		Mid:       lipgloss.Color("#00aa00"),
		High:      lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#888888"),
		Border:    lipgloss.Color("#444444"),
		CellLight: lipgloss.Color("#202020"),
		CellDark:  lipgloss.Color("#000000"),
		Low:       lipgloss.Color("#666666"),
		Mid:       lipgloss.Color("#aaaaaa"),
		High:      lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#0077be"),
		CellLight: lipgloss.Color("#00264d"),
		CellDark:  lipgloss.Color("#001a33"),
		Low:       lipgloss.Color("#4488aa"),
		Mid:       lipgloss.Color("#00a8cc"),
		High:      lipgloss.Color("#00ff88"),
	}

	Themes = []Theme{ThemeNight, ThemeRetro, ThemeMinimal, ThemeOcean}

	CurrentTheme = ThemeNight
)

// SetTheme makes the named theme current and rebuilds the package styles.
func SetTheme(name string) error {
	for _, t := range Themes {
		if t.Name == name {
			applyTheme(t)
			return nil
		}
	}
	return fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
}

// NextTheme cycles to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			applyTheme(Themes[(i+1)%len(Themes)])
			return
		}
	}
	applyTheme(Themes[0])
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
