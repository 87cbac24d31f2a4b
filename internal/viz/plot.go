// Package viz renders phase portraits to the terminal: trajectories,
// coordinate axes, and real eigenlines drawn on a braille canvas over a
// fixed square viewport centered on the origin.
package viz

import (
	"math"

	"github.com/san-kum/phaseplane/internal/eigen"
	"github.com/san-kum/phaseplane/internal/orbit"
	"github.com/san-kum/phaseplane/internal/plane"
)

// Plot maps world coordinates onto a canvas. The viewport is the square
// [-span, span] in both axes; points outside it are clipped segment-wise.
type Plot struct {
	canvas *Canvas
	span   float64
}

func NewPlot(width, height int, span float64) *Plot {
	if span <= 0 {
		span = 1
	}
	return &Plot{canvas: NewCanvas(width, height), span: span}
}

func (p *Plot) Canvas() *Canvas {
	return p.canvas
}

// pixel converts a world point to sub-pixel coordinates; ok is false when
// the point lies outside the viewport.
func (p *Plot) pixel(v plane.Vec2) (x, y int, ok bool) {
	if !v.IsFinite() || math.Abs(v.X) > p.span || math.Abs(v.Y) > p.span {
		return 0, 0, false
	}
	w := p.canvas.Width * 2
	h := p.canvas.Height * 4
	x = int((v.X + p.span) / (2 * p.span) * float64(w-1))
	y = int((p.span - v.Y) / (2 * p.span) * float64(h-1))
	return x, y, true
}

// Axes draws the coordinate axes through the origin.
func (p *Plot) Axes() {
	w := p.canvas.Width * 2
	h := p.canvas.Height * 4
	p.canvas.Line(0, (h-1)/2, w-1, (h-1)/2)
	p.canvas.Line((w-1)/2, 0, (w-1)/2, h-1)
}

// Trajectory draws the polyline of t. Segments with an endpoint outside the
// viewport are skipped rather than clipped exactly; the divergence cutoff
// keeps trajectories close to the window anyway.
func (p *Plot) Trajectory(t orbit.Trajectory) {
	for i := 1; i < len(t.Points); i++ {
		x0, y0, ok0 := p.pixel(t.Points[i-1])
		x1, y1, ok1 := p.pixel(t.Points[i])
		if ok0 && ok1 {
			p.canvas.Line(x0, y0, x1, y1)
		}
	}
}

// Mark draws a small cross at the world point v.
func (p *Plot) Mark(v plane.Vec2) {
	x, y, ok := p.pixel(v)
	if !ok {
		return
	}
	p.canvas.Set(x, y)
	p.canvas.Set(x-1, y)
	p.canvas.Set(x+1, y)
	p.canvas.Set(x, y-1)
	p.canvas.Set(x, y+1)
}

// Eigenlines draws the line through the origin spanned by each real
// eigenvector. Absent eigenvectors (complex pair) draw nothing.
func (p *Plot) Eigenlines(a eigen.Analysis) {
	if a.Vectors == nil {
		return
	}
	for _, v := range a.Vectors {
		dir := plane.Vec2{X: v.X.Re, Y: v.Y.Re}
		m := math.Max(math.Abs(dir.X), math.Abs(dir.Y))
		if m == 0 {
			continue
		}
		// Stretch the unit vector until it spans the viewport.
		end := dir.Scale(p.span / m)
		x0, y0, ok0 := p.pixel(end.Scale(-1))
		x1, y1, ok1 := p.pixel(end)
		if ok0 && ok1 {
			p.canvas.Line(x0, y0, x1, y1)
		}
	}
}

func (p *Plot) String() string {
	return p.canvas.String()
}
