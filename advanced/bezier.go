package advanced

import (
	"fmt"
	"math"
)

// CubicBez is a cubic Bézier with endpoints P0 and P3 and control points P1
// and P2.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez{%s, %s, %s, %s}", c.P0, c.P1, c.P2, c.P3)
}

// ApproximateBezier converts the arc to a cubic Bézier in closed form. The
// second return value bounds the distance between the two curves; it grows
// with the fifth power of |D|.
func (a Arc) ApproximateBezier() (CubicBez, float64) {
	dp := a.P1.Sub(a.P0)
	pp := dp.Ortho()

	d2 := a.D * a.D
	err := dp.Hypot() * math.Pow(math.Abs(a.D), 5) / (54 * (1 + d2))

	rdp := dp.Mul((1 - d2) / 3)
	rpp := pp.Mul(2 * a.D / 3)

	return CubicBez{
		P0: a.P0,
		P1: a.P0.Add(rdp).SubVec(rpp),
		P2: a.P1.SubVec(rdp).SubVec(rpp),
		P3: a.P1,
	}, err
}

// Eval evaluates the curve at t with de Casteljau's algorithm. Eval(0) and
// Eval(1) are exactly P0 and P3.
func (c CubicBez) Eval(t float64) Point {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	return p012.Lerp(p123, t)
}

func (c CubicBez) Midpoint() Point {
	p01 := c.P0.Midpoint(c.P1)
	p12 := c.P1.Midpoint(c.P2)
	p23 := c.P2.Midpoint(c.P3)
	return p01.Midpoint(p12).Midpoint(p12.Midpoint(p23))
}

// Tangent is the first derivative at t.
func (c CubicBez) Tangent(t float64) Vec2 {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	d := 3 * t * t
	return c.P1.Sub(c.P0).Mul(a).
		Add(c.P2.Sub(c.P1).Mul(b)).
		Add(c.P3.Sub(c.P2).Mul(d))
}

// secondDeriv is the second derivative at t.
func (c CubicBez) secondDeriv(t float64) Vec2 {
	x := 6 * ((-c.P0.X+3*c.P1.X-3*c.P2.X+c.P3.X)*t + (c.P0.X - 2*c.P1.X + c.P2.X))
	y := 6 * ((-c.P0.Y+3*c.P1.Y-3*c.P2.Y+c.P3.Y)*t + (c.P0.Y - 2*c.P1.Y + c.P2.Y))
	return Vec(x, y)
}

// Curvature is the signed curvature at t, positive when the curve turns
// counterclockwise. A circle of radius r has curvature ±1/r.
func (c CubicBez) Curvature(t float64) float64 {
	d1 := c.Tangent(t)
	d2 := c.secondDeriv(t)
	l := d1.Hypot()
	return d1.Cross(d2) / (l * l * l)
}

// Split divides the curve at t.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p0123 := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, p0123}, CubicBez{p0123, p123, p23, c.P3}
}

func (c CubicBez) Halve() (CubicBez, CubicBez) {
	return c.Split(0.5)
}
