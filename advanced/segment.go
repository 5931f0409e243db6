package advanced

import "math"

// Segment is a straight edge between two points. Arcs with (near) zero
// curvature answer every query through it.
type Segment struct {
	P0, P1 Point
}

// Sub returns the signed displacement between p and the segment's carrier
// line.
func (s Segment) Sub(p Point) SignedVector {
	if s.P0 == s.P1 {
		return SignedVector{Vec: s.P0.Sub(p)}
	}
	return LineFromPoints(s.P1, s.P0).Sub(p).Neg()
}

// ContainsInSpan reports whether the projection of p onto the carrier line
// falls between the endpoints, inclusive.
func (s Segment) ContainsInSpan(p Point) bool {
	d := s.P1.Sub(s.P0)
	l2 := d.Hypot2()
	if l2 == 0 {
		return false
	}
	t := p.Sub(s.P0).Dot(d) / l2
	return t >= 0 && t <= 1
}

func (s Segment) DistanceToPoint(p Point) float64 {
	return math.Sqrt(s.SquaredDistanceToPoint(p))
}

func (s Segment) SquaredDistanceToPoint(p Point) float64 {
	if s.P0 == s.P1 {
		return p.Distance2(s.P0)
	}
	if s.ContainsInSpan(p) {
		d := s.P1.Sub(s.P0)
		c := d.Cross(p.Sub(s.P0))
		return c * c / d.Hypot2()
	}
	return math.Min(p.Distance2(s.P0), p.Distance2(s.P1))
}

// SignedDistanceToPoint is DistanceToPoint, negated when p lies to the left of
// the direction P0 → P1.
func (s Segment) SignedDistanceToPoint(p Point) float64 {
	dist := s.DistanceToPoint(p)
	if s.P0 == s.P1 {
		return dist
	}
	l := LineFromPoints(s.P0, s.P1)
	if l.N.Dot(p.ToVec2())-l.C > 0 {
		return -dist
	}
	return dist
}
