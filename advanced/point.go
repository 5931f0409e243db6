package advanced

import (
	"fmt"
	"math"
)

// Points are positions, Vec2s are displacements. Both are plain values and are
// never modified in place.

type Point struct {
	X float64
	Y float64
}

type Vec2 struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Equals compares within Epsilon on each axis.
func (p Point) Equals(o Point) bool {
	return Equal(p.X, o.X) && Equal(p.Y, o.Y)
}

func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) SubVec(v Vec2) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

func (p Point) Midpoint(o Point) Point {
	return Point{X: (p.X + o.X) / 2, Y: (p.Y + o.Y) / 2}
}

// Lerp interpolates from p (t = 0) to o (t = 1). The endpoints are returned
// unchanged so that curve evaluation reproduces them bit for bit.
func (p Point) Lerp(o Point, t float64) Point {
	switch t {
	case 0:
		return p
	case 1:
		return o
	}
	return Point{X: (1-t)*p.X + t*o.X, Y: (1-t)*p.Y + t*o.Y}
}

func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Hypot()
}

func (p Point) Distance2(o Point) float64 {
	return p.Sub(o).Hypot2()
}

// IsInf reports whether either coordinate is infinite.
func (p Point) IsInf() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

func (p Point) ToVec2() Vec2 {
	return Vec2(p)
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product. It is positive when o lies
// counterclockwise of v.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Ortho rotates the vector a quarter turn counterclockwise: (x, y) → (-y, x).
func (v Vec2) Ortho() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Normalize returns the unit vector with the same direction. Normalizing the
// zero vector is a caller error and panics with an ArcError.
func (v Vec2) Normalize() Vec2 {
	l := v.Hypot()
	if l == 0 {
		fatalf("cannot normalize zero-length vector")
	}
	return v.Mul(1 / l)
}

// Angle is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
