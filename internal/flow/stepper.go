package flow

import "github.com/san-kum/phaseplane/internal/plane"

// Stepper advances a point one step of signed size h through the field
// v' = Mv.
type Stepper interface {
	Step(m plane.Mat2, p plane.Vec2, h float64) plane.Vec2
}

// RK4 is the classic fixed-step fourth-order Runge-Kutta stepper. The field
// is evaluated exactly four times per step.
type RK4 struct{}

func (RK4) Step(m plane.Mat2, p plane.Vec2, h float64) plane.Vec2 {
	k1 := m.Apply(p)
	k2 := m.Apply(p.Add(k1.Scale(h / 2)))
	k3 := m.Apply(p.Add(k2.Scale(h / 2)))
	k4 := m.Apply(p.Add(k3.Scale(h)))

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return p.Add(sum.Scale(h / 6))
}

// Euler is the first-order explicit stepper, kept for accuracy comparison.
type Euler struct{}

func (Euler) Step(m plane.Mat2, p plane.Vec2, h float64) plane.Vec2 {
	return p.Add(m.Apply(p).Scale(h))
}

// ByName returns the stepper registered under name, defaulting to RK4.
func ByName(name string) Stepper {
	if name == "euler" {
		return Euler{}
	}
	return RK4{}
}
