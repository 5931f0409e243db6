package advanced

import (
	"fmt"
	"math"
)

// The curvature D of an arc is tan(θ/4), where θ is the angle the arc
// subtends. Its sign tells which side of the chord the arc bulges to: for
// D > 0 the arc runs counterclockwise from P0 to P1 and its center lies on
// the side of Ortho(P1 - P0) only while |D| < 1.
//
//   - D = 0: a straight segment
//   - |D| < 1: a small arc, θ < π
//   - |D| = 1: a half circle
//   - |D| > 1: a large arc, θ > π
//
// Center and radius are always derived, never stored.

// Below this curvature an arc is treated as the segment between its endpoints.
const DegenerateD = 1e-5

// Tan2Atan is tan(2·atan(d)).
func Tan2Atan(d float64) float64 {
	if math.IsInf(d, 0) {
		return 0
	}
	return 2 * d / (1 - d*d)
}

// Sin2Atan is sin(2·atan(d)).
func Sin2Atan(d float64) float64 {
	if math.IsInf(d, 0) {
		return 0
	}
	return 2 * d / (1 + d*d)
}

// Cos2Atan is cos(2·atan(d)).
func Cos2Atan(d float64) float64 {
	if math.IsInf(d, 0) {
		return -1
	}
	return (1 - d*d) / (1 + d*d)
}

type Arc struct {
	P0, P1 Point
	D      float64
}

func NewArc(p0, p1 Point, d float64) Arc {
	return Arc{P0: p0, P1: p1, D: d}
}

// ArcFromPoints builds the arc from p0 to p1 that passes through pm. With
// complement set, the result is the rest of the circle instead.
func ArcFromPoints(p0, p1, pm Point, complement bool) Arc {
	arc := Arc{P0: p0, P1: p1}
	if pm != p0 && pm != p1 {
		v := p1.Sub(pm)
		u := p0.Sub(pm)
		shift := math.Pi / 2
		if complement {
			shift = 0
		}
		arc.D = math.Tan((v.Angle()-u.Angle())/2 - shift)
	}
	return arc
}

// ArcFromCenterRadiusAngle builds an arc on the given circle between angles
// a0 and a1. With complement set it sweeps a1 - a0 directly; otherwise it
// goes the other way around the circle.
func ArcFromCenterRadiusAngle(center Point, radius, a0, a1 float64, complement bool) Arc {
	p0 := center.Add(Vec(math.Cos(a0), math.Sin(a0)).Mul(radius))
	p1 := center.Add(Vec(math.Cos(a1), math.Sin(a1)).Mul(radius))
	shift := math.Pi / 2
	if complement {
		shift = 0
	}
	return Arc{P0: p0, P1: p1, D: math.Tan((a1-a0)/4 - shift)}
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc{%s → %s, d=%g}", a.P0, a.P1, a.D)
}

func (a Arc) Equals(o Arc) bool {
	return a.P0.Equals(o.P0) && a.P1.Equals(o.P1) && Equal(a.D, o.D)
}

func (a Arc) IsDegenerate() bool {
	return math.Abs(a.D) < DegenerateD
}

func (a Arc) IsLarge() bool {
	return math.Abs(a.D) > 1
}

func (a Arc) Segment() Segment {
	return Segment{P0: a.P0, P1: a.P1}
}

// Radius is never negative. It is infinite for degenerate arcs.
func (a Arc) Radius() float64 {
	return math.Abs(a.P1.Sub(a.P0).Hypot() / (2 * Sin2Atan(a.D)))
}

// Center of the arc's circle. Not meaningful for degenerate arcs.
func (a Arc) Center() Point {
	m := a.P0.Midpoint(a.P1)
	if 1-a.D*a.D == 0 {
		// Half circle: tan(2·atan(d)) is unbounded and the center sits on the
		// chord.
		return m
	}
	return m.Add(a.P1.Sub(a.P0).Ortho().Mul(1 / (2 * Tan2Atan(a.D))))
}

// Tangents returns the tangent directions at P0 and P1, both oriented along
// the direction of travel. Their magnitude is not meaningful.
func (a Arc) Tangents() (Vec2, Vec2) {
	dp := a.P1.Sub(a.P0).Mul(0.5)
	pp := dp.Ortho().Mul(-Sin2Atan(a.D))
	rdp := dp.Mul(Cos2Atan(a.D))
	return rdp.Add(pp), rdp.Sub(pp)
}

// WedgeContainsPoint reports whether p lies in the angular sector swept by the
// arc, boundary included. Points in the wedge are closest to the arc's
// interior; all others are closest to an endpoint.
func (a Arc) WedgeContainsPoint(p Point) bool {
	if a.IsDegenerate() {
		return a.Segment().ContainsInSpan(p)
	}
	t0, t1 := a.Tangents()
	ahead := p.Sub(a.P0).Dot(t0) >= 0
	behind := p.Sub(a.P1).Dot(t1) <= 0
	if a.IsLarge() {
		// The sector is wider than a half plane, so it is the union of the two
		// half planes rather than their intersection.
		return ahead || behind
	}
	return ahead && behind
}

// Sub returns the displacement between p and its closest approach to the arc,
// with Negative telling which side of the outline p is on.
func (a Arc) Sub(p Point) SignedVector {
	if a.IsDegenerate() {
		return a.Segment().Sub(p)
	}

	if a.WedgeContainsPoint(p) {
		c := a.Center()
		r := a.Radius()
		toCenter := c.Sub(p)
		dist := toCenter.Hypot()
		negative := xor(a.D < 0, dist < r)
		if toCenter.IsZero() {
			return SignedVector{Negative: negative}
		}
		return SignedVector{Vec: toCenter.Normalize().Mul(math.Abs(dist - r)), Negative: negative}
	}

	d0 := p.Distance2(a.P0)
	d1 := p.Distance2(a.P1)
	nearest := a.P1
	if d0 < d1 {
		nearest = a.P0
	}

	// Outside the wedge the sign comes from the complementary arc through the
	// same endpoints. Its wedge covers exactly the region on the far side of
	// the endpoint tangents, so the sign flips where the distance field does
	// and nowhere else.
	other := Arc{P0: a.P0, P1: a.P1, D: (1 + a.D) / (1 - a.D)}
	normal := a.Center().Sub(nearest)
	if normal.Hypot2() == 0 {
		return SignedVector{Negative: true}
	}

	l := Line{N: normal, C: normal.Dot(nearest.ToVec2())}
	return SignedVector{Vec: l.Sub(p).Vec, Negative: !other.WedgeContainsPoint(p)}
}

// DistanceToPoint is the unsigned distance from p to the arc.
func (a Arc) DistanceToPoint(p Point) float64 {
	if a.IsDegenerate() {
		return a.Segment().DistanceToPoint(p)
	}
	if a.WedgeContainsPoint(p) {
		return math.Abs(p.Distance(a.Center()) - a.Radius())
	}
	return math.Sqrt(math.Min(p.Distance2(a.P0), p.Distance2(a.P1)))
}

func (a Arc) SquaredDistanceToPoint(p Point) float64 {
	if a.IsDegenerate() {
		return a.Segment().SquaredDistanceToPoint(p)
	}
	if a.WedgeContainsPoint(p) {
		d := p.Distance(a.Center()) - a.Radius()
		return d * d
	}
	return math.Min(p.Distance2(a.P0), p.Distance2(a.P1))
}

// SignedDistanceToPoint is DistanceToPoint carrying the sign of Sub.
func (a Arc) SignedDistanceToPoint(p Point) float64 {
	if a.IsDegenerate() {
		return a.Segment().SignedDistanceToPoint(p)
	}
	dist := a.DistanceToPoint(p)
	if a.Sub(p).Negative {
		return -dist
	}
	return dist
}

// ExtendedDist projects p onto the normal of the arc's nearer end. Adjacent
// arcs of an outline share an endpoint and a normal there, so the metric is
// continuous across the seam.
func (a Arc) ExtendedDist(p Point) float64 {
	m := a.P0.Lerp(a.P1, 0.5)
	dp := a.P1.Sub(a.P0)
	pp := dp.Ortho()
	d2 := Tan2Atan(a.D)

	if p.Sub(m).Dot(a.P1.Sub(m)) < 0 {
		return p.Sub(a.P0).Dot(extendedNormal(pp, dp, d2))
	}
	return p.Sub(a.P1).Dot(extendedNormal(pp, dp.Neg(), d2))
}

// Normalized pp + dp·d2. When d2 is unbounded (a half circle) the direction is
// dp itself.
func extendedNormal(pp, dp Vec2, d2 float64) Vec2 {
	if math.IsInf(d2, 0) {
		if d2 < 0 {
			return dp.Neg().Normalize()
		}
		return dp.Normalize()
	}
	return pp.Add(dp.Mul(d2)).Normalize()
}

// Extents resets e to the tight bounding box of the swept arc. Besides the two
// endpoints, the extreme points of the circle are included when the arc
// actually passes through them.
func (a Arc) Extents(e *Extents) {
	e.Clear()
	e.Add(a.P0)
	e.Add(a.P1)
	if a.IsDegenerate() {
		return
	}

	c := a.Center()
	r := a.Radius()
	for _, dir := range []Vec2{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		p := c.Add(dir.Mul(r))
		if a.WedgeContainsPoint(p) {
			e.Add(p)
		}
	}
}

// SVGCommand renders the arc as a standalone SVG elliptical-arc command to P1,
// with the large-arc flag derived from the curvature.
func (a Arc) SVGCommand() string {
	return PathCommand{
		Kind:     ArcTo,
		To:       a.P1,
		Radius:   a.Radius(),
		LargeArc: a.IsLarge(),
		Sweep:    a.D > 0,
	}.String()
}
