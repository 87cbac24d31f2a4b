// Package orbit composes integrator output into trajectories and manages the
// set of trajectories seeded on one matrix. Trajectories are immutable once
// built and are discarded wholesale whenever the matrix changes; a curve
// integrated under an old field is never reused.
package orbit

import (
	"fmt"

	"github.com/san-kum/phaseplane/internal/eigen"
	"github.com/san-kum/phaseplane/internal/flow"
	"github.com/san-kum/phaseplane/internal/plane"
)

// Palette is cycled to color newly seeded trajectories.
var Palette = []string{
	"#00ffff", "#ff00ff", "#ffff00", "#00ff88", "#ff8800", "#88aaff",
}

// Trajectory is one time-ordered flow line through Initial.
type Trajectory struct {
	ID      string       `json:"id"`
	Initial plane.Vec2   `json:"initial"`
	Points  []plane.Vec2 `json:"points"`
	Color   string       `json:"color"`
}

// FlowLine builds the full bidirectional path through initial: the backward
// run reversed, with its copy of the seed dropped, then the forward run. The
// result is time-ordered and contains initial exactly once; it is shorter
// than 2*steps+1 points when either direction hit the divergence cutoff.
func FlowLine(m plane.Mat2, initial plane.Vec2, steps int, stepSize float64) []plane.Vec2 {
	fwd := flow.Integrate(m, initial, steps, stepSize, true)
	bwd := flow.Integrate(m, initial, steps, stepSize, false)

	points := make([]plane.Vec2, 0, len(bwd)-1+len(fwd))
	for i := len(bwd) - 1; i > 0; i-- {
		points = append(points, bwd[i])
	}
	return append(points, fwd...)
}

// Portrait owns one matrix, its equilibrium analysis, and every trajectory
// seeded on it. It is a plain session object with no synchronization;
// callers needing concurrent access hold their own lock.
type Portrait struct {
	mat      plane.Mat2
	analysis eigen.Analysis
	trajs    []Trajectory
	steps    int
	stepSize float64
	seq      int
}

func NewPortrait(m plane.Mat2, steps int, stepSize float64) *Portrait {
	return &Portrait{
		mat:      m,
		analysis: eigen.Classify(m),
		steps:    steps,
		stepSize: stepSize,
	}
}

func (p *Portrait) Matrix() plane.Mat2 {
	return p.mat
}

func (p *Portrait) Analysis() eigen.Analysis {
	return p.analysis
}

func (p *Portrait) Trajectories() []Trajectory {
	return p.trajs
}

// SetMatrix installs a new matrix, recomputes the analysis, and drops all
// trajectories.
func (p *Portrait) SetMatrix(m plane.Mat2) {
	p.mat = m
	p.analysis = eigen.Classify(m)
	p.trajs = nil
}

// AddPoint seeds one flow line through initial and returns it.
func (p *Portrait) AddPoint(initial plane.Vec2) Trajectory {
	t := Trajectory{
		ID:      fmt.Sprintf("traj_%d", p.seq),
		Initial: initial,
		Points:  FlowLine(p.mat, initial, p.steps, p.stepSize),
		Color:   Palette[p.seq%len(Palette)],
	}
	p.seq++
	p.trajs = append(p.trajs, t)
	return t
}

// SeedGrid seeds an n by n lattice of flow lines over the square
// [-span, span] in both coordinates, skipping the origin where the field
// vanishes.
func (p *Portrait) SeedGrid(n int, span float64) {
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -span + 2*span*float64(i)/float64(n-1)
			y := -span + 2*span*float64(j)/float64(n-1)
			if x == 0 && y == 0 {
				continue
			}
			p.AddPoint(plane.Vec2{X: x, Y: y})
		}
	}
}
