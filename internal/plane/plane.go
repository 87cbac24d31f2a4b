// Package plane holds the value types for a planar linear system v' = Mv:
// points/vectors in the plane, the 2x2 coefficient matrix, and complex
// scalars and 2-vectors for spectral data.
//
// Everything here is an immutable value; operations return new values.
package plane

import "math"

// Vec2 is a point in the plane, used interchangeably as a position or a
// velocity depending on context.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Mat2 is a real 2x2 matrix
//
//	[A B]
//	[C D]
//
// governing the field v' = Mv.
type Mat2 struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// Apply evaluates the vector field at p, i.e. M·p.
func (m Mat2) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

func (m Mat2) Trace() float64 {
	return m.A + m.D
}

func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Complex is one scalar in the complex plane. A struct rather than
// complex128 so eigenvalue records serialize as {re, im} pairs.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// CVec2 is a 2-vector over the complex field.
type CVec2 struct {
	X Complex `json:"x"`
	Y Complex `json:"y"`
}
