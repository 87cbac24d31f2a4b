package plane

import (
	"math"
	"testing"
)

func TestMat2Apply(t *testing.T) {
	m := Mat2{A: 1, B: 2, C: 3, D: 4}
	got := m.Apply(Vec2{X: 1, Y: -1})

	if got.X != -1 || got.Y != -1 {
		t.Errorf("expected (-1,-1), got (%v,%v)", got.X, got.Y)
	}
}

func TestMat2Invariants(t *testing.T) {
	m := Mat2{A: 1, B: 2, C: 3, D: 4}

	if m.Trace() != 5 {
		t.Errorf("trace: expected 5, got %v", m.Trace())
	}
	if m.Det() != -2 {
		t.Errorf("det: expected -2, got %v", m.Det())
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: -3, Y: 0.5}

	sum := a.Add(b)
	if sum.X != -2 || sum.Y != 2.5 {
		t.Errorf("add: got (%v,%v)", sum.X, sum.Y)
	}

	scaled := a.Scale(2)
	if scaled.X != 2 || scaled.Y != 4 {
		t.Errorf("scale: got (%v,%v)", scaled.X, scaled.Y)
	}

	if math.Abs(Vec2{X: 3, Y: 4}.Norm()-5) > 1e-12 {
		t.Error("norm of (3,4) should be 5")
	}
}

func TestVec2IsFinite(t *testing.T) {
	if !(Vec2{X: 1, Y: -2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec2{X: math.NaN(), Y: 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec2{X: 0, Y: math.Inf(1)}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}
