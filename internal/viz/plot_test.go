package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/phaseplane/internal/eigen"
	"github.com/san-kum/phaseplane/internal/orbit"
	"github.com/san-kum/phaseplane/internal/plane"
)

func lit(s string) int {
	n := 0
	for _, r := range s {
		if r > 0x2800 && r < 0x2900 {
			n++
		}
	}
	return n
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Cell(0, 0) != 0x2801 {
		t.Errorf("expected dot 1 set, got %U", c.Cell(0, 0))
	}

	// Out-of-range sets must be ignored.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Line(0, 0, 7, 15)
	if lit(c.String()) == 0 {
		t.Fatal("line drew nothing")
	}

	c.Clear()
	if lit(c.String()) != 0 {
		t.Error("clear left dots on the canvas")
	}
}

func TestPlotTrajectory(t *testing.T) {
	p := NewPlot(20, 10, 5)
	traj := orbit.Trajectory{
		Points: []plane.Vec2{{X: -3, Y: -3}, {X: 0, Y: 0}, {X: 3, Y: 3}},
	}

	p.Trajectory(traj)
	if lit(p.String()) == 0 {
		t.Error("trajectory drew nothing")
	}
}

func TestPlotClipsOutOfRange(t *testing.T) {
	p := NewPlot(20, 10, 5)
	traj := orbit.Trajectory{
		Points: []plane.Vec2{{X: 50, Y: 50}, {X: 60, Y: 60}},
	}

	p.Trajectory(traj)
	if lit(p.String()) != 0 {
		t.Error("out-of-viewport segment should draw nothing")
	}
}

func TestPlotAxes(t *testing.T) {
	p := NewPlot(20, 10, 5)
	p.Axes()

	out := p.String()
	if lit(out) == 0 {
		t.Error("axes drew nothing")
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 10 {
		t.Error("expected 10 output rows")
	}
}

func TestPlotEigenlines(t *testing.T) {
	p := NewPlot(20, 10, 5)

	// Complex pair: nothing to draw.
	p.Eigenlines(eigen.Classify(plane.Mat2{A: 0, B: -2, C: 2, D: 0}))
	if lit(p.String()) != 0 {
		t.Error("center has no real eigenlines")
	}

	// Saddle: both coordinate axes are eigenlines.
	p.Eigenlines(eigen.Classify(plane.Mat2{A: 1, B: 0, C: 0, D: -1}))
	if lit(p.String()) == 0 {
		t.Error("saddle eigenlines drew nothing")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("phosphor").Name != "phosphor" {
		t.Error("expected phosphor theme")
	}
	if GetTheme("nope").Name != "neon" {
		t.Error("unknown theme should fall back to neon")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme name list incomplete")
	}
}
