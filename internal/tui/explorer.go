// Package tui is the interactive phase-portrait explorer: edit the matrix
// coefficient by coefficient and watch the classification and portrait
// update live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/phaseplane/internal/config"
	"github.com/san-kum/phaseplane/internal/orbit"
	"github.com/san-kum/phaseplane/internal/plane"
	"github.com/san-kum/phaseplane/internal/viz"
)

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	box    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	hint   = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	header = lipgloss.NewStyle().Bold(true)
)

var cellNames = [4]string{"a", "b", "c", "d"}

type model struct {
	portrait *orbit.Portrait
	cfg      *config.Config
	theme    viz.Theme

	cell      int     // selected coefficient, row-major a b c d
	increment float64 // per-keypress coefficient change

	presets   []string
	presetIdx int

	width  int
	height int
}

func newModel(cfg *config.Config) model {
	m := model{
		portrait:  orbit.NewPortrait(cfg.Matrix.Mat2(), cfg.Steps, cfg.StepSize),
		cfg:       cfg,
		theme:     viz.GetTheme(cfg.Theme),
		increment: 0.1,
		presets:   config.ListPresets(),
		width:     80,
		height:    24,
	}
	m.portrait.SeedGrid(cfg.Grid, cfg.Span)
	return m
}

// Run starts the explorer and blocks until it exits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.cell = (m.cell + 3) % 4
	case "right", "l", "tab":
		m.cell = (m.cell + 1) % 4

	case "up", "k", "+", "=":
		m.adjust(m.increment)
	case "down", "j", "-", "_":
		m.adjust(-m.increment)

	case "[":
		m.increment /= 10
	case "]":
		m.increment *= 10

	case "0":
		m.setCoefficient(0)

	case "p":
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		cfg := config.GetPreset(m.presets[m.presetIdx])
		m.reseed(cfg.Matrix.Mat2())

	case "t":
		names := viz.ThemeNames()
		for i, name := range names {
			if name == m.theme.Name {
				m.theme = viz.GetTheme(names[(i+1)%len(names)])
				break
			}
		}

	case "g":
		m.portrait.SeedGrid(m.cfg.Grid, m.cfg.Span)
	case "c":
		// Reinstalling the same matrix drops every trajectory.
		m.portrait.SetMatrix(m.portrait.Matrix())
	}
	return m, nil
}

func (m *model) coefficients() [4]float64 {
	mat := m.portrait.Matrix()
	return [4]float64{mat.A, mat.B, mat.C, mat.D}
}

func (m *model) adjust(delta float64) {
	c := m.coefficients()
	m.setCoefficient(c[m.cell] + delta)
}

func (m *model) setCoefficient(value float64) {
	c := m.coefficients()
	c[m.cell] = value
	m.reseed(plane.Mat2{A: c[0], B: c[1], C: c[2], D: c[3]})
}

func (m *model) reseed(mat plane.Mat2) {
	m.portrait.SetMatrix(mat)
	m.portrait.SeedGrid(m.cfg.Grid, m.cfg.Span)
}

func (m model) View() string {
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent)
	primary := lipgloss.NewStyle().Foreground(m.theme.Primary)

	title := header.Foreground(m.theme.Primary).Render("phaseplane") +
		dim.Render("  v' = Mv")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		box.Render(m.matrixPanel(accent)),
		" ",
		box.Render(m.analysisPanel()),
	)

	plotW, plotH := m.plotSize()
	plot := viz.NewPlot(plotW, plotH, m.cfg.Span)
	plot.Axes()
	plot.Eigenlines(m.portrait.Analysis())
	for _, t := range m.portrait.Trajectories() {
		plot.Trajectory(t)
	}

	keys := hint.Render(
		"←/→ select  ↑/↓ adjust  [/] step  0 zero  p preset  g seed  c clear  t theme  q quit")

	return strings.Join([]string{
		title,
		panels,
		primary.Render(plot.String()),
		keys,
	}, "\n")
}

func (m model) plotSize() (int, int) {
	w := m.cfg.Width
	h := m.cfg.Height
	if m.width > 2 && m.width-2 < w {
		w = m.width - 2
	}
	// Leave room for the panels and key hints.
	if m.height > 14 && m.height-12 < h {
		h = m.height - 12
	}
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m model) matrixPanel(accent lipgloss.Style) string {
	c := m.coefficients()

	var b strings.Builder
	b.WriteString(dim.Render("matrix") + "\n")
	for row := 0; row < 2; row++ {
		b.WriteString(dim.Render("["))
		for col := 0; col < 2; col++ {
			idx := row*2 + col
			cell := fmt.Sprintf(" %7.3f", c[idx])
			if idx == m.cell {
				b.WriteString(accent.Bold(true).Render(cell))
			} else {
				b.WriteString(white.Render(cell))
			}
		}
		b.WriteString(dim.Render(" ]") + "\n")
	}
	b.WriteString(dim.Render(fmt.Sprintf("edit %s  step %g", cellNames[m.cell], m.increment)))
	return b.String()
}

func (m model) analysisPanel() string {
	a := m.portrait.Analysis()
	stability := lipgloss.NewStyle().Foreground(m.theme.StabilityColor(a.Stab))

	var b strings.Builder
	b.WriteString(dim.Render("equilibrium") + "\n")
	b.WriteString(white.Render(string(a.Class)) + "\n")
	b.WriteString(stability.Render(string(a.Stab)) + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("tr %.3f  det %.3f  disc %.3f", a.Trace, a.Det, a.Disc)) + "\n")
	b.WriteString(dim.Render("λ₁ ") + white.Render(fmtComplex(a.Values[0])) +
		dim.Render("  λ₂ ") + white.Render(fmtComplex(a.Values[1])))
	if a.Vectors != nil {
		b.WriteString("\n" + dim.Render("v₁ ") + white.Render(fmtVec(a.Vectors[0])) +
			dim.Render("  v₂ ") + white.Render(fmtVec(a.Vectors[1])))
	}
	return b.String()
}

func fmtComplex(c plane.Complex) string {
	if c.Im == 0 {
		return fmt.Sprintf("%.3f", c.Re)
	}
	return fmt.Sprintf("%.3f%+.3fi", c.Re, c.Im)
}

func fmtVec(v plane.CVec2) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X.Re, v.Y.Re)
}
