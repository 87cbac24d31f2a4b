package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/phaseplane/internal/eigen"
)

// Theme is a color scheme for terminal output.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Good    lipgloss.Color
	Bad     lipgloss.Color
	Neutral lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:    "neon",
		Primary: lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Good:    lipgloss.Color("#00ff88"),
		Bad:     lipgloss.Color("#ff4444"),
		Neutral: lipgloss.Color("#ffcc00"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Good:    lipgloss.Color("#88ff88"),
		Bad:     lipgloss.Color("#ffff00"),
		Neutral: lipgloss.Color("#00cc00"),
	}

	ThemePlain = Theme{
		Name:    "plain",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Good:    lipgloss.Color("#00ff00"),
		Bad:     lipgloss.Color("#ff0000"),
		Neutral: lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemePlain}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// StabilityColor picks the theme color conveying the stability label:
// sinks green, sources and saddles red, the marginal cases yellow.
func (t Theme) StabilityColor(s eigen.Stability) lipgloss.Color {
	switch s {
	case eigen.Sink, eigen.SpiralSink, eigen.Stable:
		return t.Good
	case eigen.NeutrallyStable, eigen.MarginallyStable:
		return t.Neutral
	default:
		return t.Bad
	}
}
