// Package eigen classifies the equilibrium at the origin of a planar linear
// system v' = Mv from the spectral data of M: trace, determinant,
// discriminant, the eigenvalue pair, and real eigenvectors when they exist.
package eigen

import (
	"math"

	"github.com/san-kum/phaseplane/internal/plane"
)

// eps bounds the row-degeneracy checks in the eigenvector solve and the
// trace check that separates centers from spirals. Sign branches on the
// determinant and discriminant compare exactly against zero; nudging them
// onto a tolerance would reclassify the boundary cases (disc = 0, det = 0)
// the closed forms produce exactly.
const eps = 1e-9

// Class is the qualitative type of the equilibrium.
type Class string

const (
	Saddle       Class = "Saddle Point"
	Node         Class = "Node"
	Center       Class = "Center"
	Spiral       Class = "Spiral Point"
	ImproperNode Class = "Proper/Improper Node"
	Degenerate   Class = "Degenerate (Non-isolated)"
)

// Stability qualifies the equilibrium's stability.
type Stability string

const (
	Unstable         Stability = "Unstable"
	Stable           Stability = "Stable"
	Source           Stability = "Unstable (Source)"
	Sink             Stability = "Stable (Sink)"
	NeutrallyStable  Stability = "Neutrally Stable"
	SpiralSource     Stability = "Unstable (Spiral Source)"
	SpiralSink       Stability = "Stable (Spiral Sink)"
	MarginallyStable Stability = "Marginally Stable"
)

// Analysis is the derived spectral record for one matrix. Vectors is nil
// exactly when the discriminant is negative: complex eigenvectors have no
// real eigenline to draw.
type Analysis struct {
	Trace   float64          `json:"trace"`
	Det     float64          `json:"determinant"`
	Disc    float64          `json:"discriminant"`
	Values  [2]plane.Complex `json:"eigenvalues"`
	Vectors *[2]plane.CVec2  `json:"eigenvectors,omitempty"`
	Class   Class            `json:"classification"`
	Stab    Stability        `json:"stability"`
}

// Classify computes the full analysis for m. It is total over finite real
// matrices; degenerate cases (singular matrix, repeated eigenvalues, zero
// matrix) land in explicit branches rather than errors.
func Classify(m plane.Mat2) Analysis {
	tr := m.Trace()
	det := m.Det()
	disc := tr*tr - 4*det

	a := Analysis{Trace: tr, Det: det, Disc: disc}

	if disc >= 0 {
		// Real pair; the +sqrt root is ordered first.
		root := math.Sqrt(disc)
		r1 := (tr + root) / 2
		r2 := (tr - root) / 2
		a.Values = [2]plane.Complex{{Re: r1}, {Re: r2}}
		a.Vectors = &[2]plane.CVec2{realVector(m, r1), realVector(m, r2)}
	} else {
		// Conjugate pair; positive imaginary part first.
		im := math.Sqrt(-disc) / 2
		a.Values = [2]plane.Complex{{Re: tr / 2, Im: im}, {Re: tr / 2, Im: -im}}
	}

	switch {
	case det < 0:
		a.Class, a.Stab = Saddle, Unstable
	case det > 0 && disc > 0:
		a.Class = Node
		if tr > 0 {
			a.Stab = Source
		} else {
			a.Stab = Sink
		}
	case det > 0 && disc < 0 && math.Abs(tr) < eps:
		a.Class, a.Stab = Center, NeutrallyStable
	case det > 0 && disc < 0:
		a.Class = Spiral
		if tr > 0 {
			a.Stab = SpiralSource
		} else {
			a.Stab = SpiralSink
		}
	case det > 0:
		// disc == 0: repeated real eigenvalue.
		a.Class = ImproperNode
		if tr > 0 {
			a.Stab = Unstable
		} else {
			a.Stab = Stable
		}
	default:
		// det == 0: the origin is not an isolated equilibrium.
		a.Class, a.Stab = Degenerate, MarginallyStable
	}

	return a
}

// realVector solves (M - lambda*I)v = 0 for one real unit eigenvector.
// Row selection is deterministic: the first row is preferred, and within it
// the off-diagonal entry decides the solve direction.
func realVector(m plane.Mat2, lambda float64) plane.CVec2 {
	ra := m.A - lambda
	rb := m.B

	if math.Abs(rb) > eps {
		return unit(-rb, ra)
	}
	if math.Abs(ra) > eps {
		return realVec(0, 1)
	}

	// First row vanished; fall through to the second.
	rc := m.C
	rd := m.D - lambda
	if math.Abs(rc) > eps {
		return unit(-rd/rc, 1)
	}

	// M - lambda*I is the zero matrix within tolerance: every direction is
	// an eigenvector, pick the canonical one.
	return realVec(1, 0)
}

func unit(x, y float64) plane.CVec2 {
	n := math.Hypot(x, y)
	return realVec(x/n, y/n)
}

func realVec(x, y float64) plane.CVec2 {
	return plane.CVec2{X: plane.Complex{Re: x}, Y: plane.Complex{Re: y}}
}
