package advanced

import "math"

// A Line is the set of points p with N·p = C. N does not need to be a unit
// vector.
type Line struct {
	N Vec2
	C float64
}

// Line through p0 and p1. The normal is the chord rotated counterclockwise.
func LineFromPoints(p0, p1 Point) Line {
	n := p1.Sub(p0).Ortho()
	return Line{N: n, C: p0.ToVec2().Dot(n)}
}

func (l Line) Normalized() Line {
	d := l.N.Hypot()
	if IsZero(d) {
		return l
	}
	return Line{N: l.N.Mul(1 / d), C: l.C / d}
}

// Intersect returns the crossing point of two lines, or a point at infinity
// if they are parallel.
func (l Line) Intersect(o Line) Point {
	det := l.N.Cross(o.N)
	if det == 0 {
		return Point{X: math.Inf(1), Y: math.Inf(1)}
	}
	return Point{
		X: (l.C*o.N.Y - l.N.Y*o.C) / det,
		Y: (l.N.X*o.C - l.C*o.N.X) / det,
	}
}

// Sub returns the shortest displacement from p onto the line. Negative is set
// when p lies on the side the normal points to.
func (l Line) Sub(p Point) SignedVector {
	n := l.N.Hypot()
	if n == 0 {
		return SignedVector{}
	}
	mag := -(l.N.Dot(p.ToVec2()) - l.C) / n
	return SignedVector{Vec: l.N.Mul(mag / n), Negative: mag < 0}
}
