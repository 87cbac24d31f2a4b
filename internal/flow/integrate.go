// Package flow integrates trajectories of the planar linear system v' = Mv
// with a fixed step size. Integration is pure: identical inputs always
// produce the identical point sequence.
package flow

import (
	"math"

	"github.com/san-kum/phaseplane/internal/plane"
)

// Bound is the divergence cutoff. Once either coordinate of a computed point
// exceeds it in absolute value, integration stops and that point is not
// returned. This keeps diverging trajectories finite in time and memory.
const Bound = 20.0

// Integrate produces the time-ordered solution curve through initial using
// fourth-order Runge-Kutta. The first element of the result is always
// initial itself; steps is the maximum number of further points. A negative
// time direction is selected with forward=false.
//
// The divergence cutoff is checked after every step, so the result may hold
// fewer than steps+1 points.
func Integrate(m plane.Mat2, initial plane.Vec2, steps int, stepSize float64, forward bool) []plane.Vec2 {
	return IntegrateWith(RK4{}, m, initial, steps, stepSize, forward)
}

// IntegrateWith is Integrate with an explicit stepper.
func IntegrateWith(s Stepper, m plane.Mat2, initial plane.Vec2, steps int, stepSize float64, forward bool) []plane.Vec2 {
	h := stepSize
	if !forward {
		h = -stepSize
	}

	capacity := steps + 1
	if capacity < 1 {
		capacity = 1
	}

	points := make([]plane.Vec2, 1, capacity)
	points[0] = initial

	p := initial
	for i := 0; i < steps; i++ {
		p = s.Step(m, p, h)
		if math.Abs(p.X) > Bound || math.Abs(p.Y) > Bound {
			break
		}
		points = append(points, p)
	}

	return points
}
