package flow

import (
	"math"
	"testing"

	"github.com/san-kum/phaseplane/internal/plane"
)

func TestIntegrateStartsAtInitial(t *testing.T) {
	m := plane.Mat2{A: 1, B: -2, C: 3, D: 0.5}
	p0 := plane.Vec2{X: 0.25, Y: -1.5}

	for _, forward := range []bool{true, false} {
		pts := Integrate(m, p0, 50, 0.05, forward)
		if pts[0] != p0 {
			t.Errorf("forward=%v: first point %v, want %v", forward, pts[0], p0)
		}
	}
}

func TestIntegrateZeroSteps(t *testing.T) {
	m := plane.Mat2{A: 0, B: 1, C: -1, D: 0}
	p0 := plane.Vec2{X: 1, Y: 1}

	for _, forward := range []bool{true, false} {
		pts := Integrate(m, p0, 0, 0.05, forward)
		if len(pts) != 1 {
			t.Fatalf("forward=%v: expected 1 point, got %d", forward, len(pts))
		}
		if pts[0] != p0 {
			t.Errorf("forward=%v: got %v, want %v", forward, pts[0], p0)
		}
	}
}

func TestRK4Accuracy(t *testing.T) {
	// v' = Mv with M = [0 1; -1 0] is the harmonic oscillator:
	// x(t) = cos(t), y(t) = -sin(t) from (1, 0).
	m := plane.Mat2{A: 0, B: 1, C: -1, D: 0}
	dt := 0.01
	steps := 100

	pts := Integrate(m, plane.Vec2{X: 1, Y: 0}, steps, dt, true)
	if len(pts) != steps+1 {
		t.Fatalf("expected %d points, got %d", steps+1, len(pts))
	}

	tEnd := float64(steps) * dt
	last := pts[len(pts)-1]

	if math.Abs(last.X-math.Cos(tEnd)) > 1e-6 {
		t.Errorf("x error too large: got %.9f, expected %.9f", last.X, math.Cos(tEnd))
	}
	if math.Abs(last.Y+math.Sin(tEnd)) > 1e-6 {
		t.Errorf("y error too large: got %.9f, expected %.9f", last.Y, -math.Sin(tEnd))
	}
}

func TestDivergenceCutoff(t *testing.T) {
	// Strictly positive eigenvalue along x; seed far out on the eigenline so
	// the cutoff hits well before the step budget.
	m := plane.Mat2{A: 1, B: 0, C: 0, D: 0}
	p0 := plane.Vec2{X: 18, Y: 0}
	steps := 200

	pts := Integrate(m, p0, steps, 0.05, true)
	if len(pts) >= steps+1 {
		t.Fatalf("expected early cutoff, got full %d points", len(pts))
	}
	for i, p := range pts {
		if math.Abs(p.X) > Bound || math.Abs(p.Y) > Bound {
			t.Errorf("point %d exceeds bound: %v", i, p)
		}
	}
}

func TestCenterOrbitStaysCircular(t *testing.T) {
	// Zero-trace center: orbits are ellipses, here circles of radius |p0|.
	m := plane.Mat2{A: 0, B: -2, C: 2, D: 0}
	p0 := plane.Vec2{X: 1, Y: 0}

	pts := Integrate(m, p0, 200, 0.05, true)
	for i, p := range pts {
		if math.Abs(p.Norm()-1) > 1e-4 {
			t.Fatalf("point %d drifted off orbit: radius %.8f", i, p.Norm())
		}
	}
}

func TestBackwardRetracesForward(t *testing.T) {
	m := plane.Mat2{A: 0, B: -2, C: 2, D: 0}
	p0 := plane.Vec2{X: 0.5, Y: -0.75}
	steps := 50
	dt := 0.05

	fwd := Integrate(m, p0, steps, dt, true)
	end := fwd[len(fwd)-1]
	back := Integrate(m, end, steps, dt, false)

	returned := back[len(back)-1]
	if returned.Sub(p0).Norm() > 1e-6 {
		t.Errorf("backward run ended at %v, want %v", returned, p0)
	}
}

func TestEulerStepMatchesClosedForm(t *testing.T) {
	m := plane.Mat2{A: 2, B: 0, C: 0, D: -1}
	p := plane.Vec2{X: 1, Y: 2}

	got := Euler{}.Step(m, p, 0.1)
	want := plane.Vec2{X: 1.2, Y: 1.8}

	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("euler").(Euler); !ok {
		t.Error("euler should resolve to Euler stepper")
	}
	if _, ok := ByName("rk4").(RK4); !ok {
		t.Error("rk4 should resolve to RK4 stepper")
	}
	if _, ok := ByName("unknown").(RK4); !ok {
		t.Error("unknown stepper should default to RK4")
	}
}
