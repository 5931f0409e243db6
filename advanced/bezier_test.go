package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var quarterCircle = NewArc(Pt(1, 0), Pt(0, 1), math.Tan(math.Pi/8))

func TestApproximateBezier(t *testing.T) {
	bez, bound := quarterCircle.ApproximateBezier()

	// The classic 4/3·tan(θ/4) control point placement
	k := 4.0 / 3 * math.Tan(math.Pi/8)
	diff(t, CubicBez{Pt(1, 0), Pt(1, k), Pt(k, 1), Pt(0, 1)}, bez, approx)

	assert.InDelta(t, 2.7256e-4, bound, 1e-7)

	var worst float64
	for i := 0; i <= 200; i++ {
		worst = math.Max(worst, quarterCircle.DistanceToPoint(bez.Eval(float64(i)/200)))
	}
	assert.Greater(t, worst, 0.0)
	assert.LessOrEqual(t, worst, bound*1.1)
}

func TestApproximateBezierErrorBound(t *testing.T) {
	for _, arc := range sampleArcs {
		bez, bound := arc.ApproximateBezier()
		assert.GreaterOrEqual(t, bound, 0.0, "%s", arc)
		assert.Equal(t, arc.P0, bez.Eval(0), "%s", arc)
		assert.Equal(t, arc.P1, bez.Eval(1), "%s", arc)
	}

	// Straight arcs are exact
	bez, bound := NewArc(Pt(0, 0), Pt(3, 6), 0).ApproximateBezier()
	assert.Equal(t, 0.0, bound)
	diff(t, CubicBez{Pt(0, 0), Pt(1, 2), Pt(2, 4), Pt(3, 6)}, bez, approx)

	// The bound grows with curvature
	prev := -1.0
	for _, d := range []float64{0, 0.1, 0.3, 0.5, 1, 2} {
		_, bound := NewArc(Pt(0, 0), Pt(2, 0), d).ApproximateBezier()
		assert.Greater(t, bound, prev, "d = %g", d)
		prev = bound
	}
}

func TestBezierCurvature(t *testing.T) {
	bez, _ := quarterCircle.ApproximateBezier()
	for _, t0 := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, 1, bez.Curvature(t0), 0.05, "t = %g", t0)
	}

	// Clockwise arcs turn the other way
	cw, _ := NewArc(Pt(0, 1), Pt(1, 0), -math.Tan(math.Pi/8)).ApproximateBezier()
	assert.InDelta(t, -1, cw.Curvature(0.5), 0.05)

	// Tangents follow the arc's travel direction
	t0, t1 := quarterCircle.Tangents()
	assert.InDelta(t, 0, bez.Tangent(0).Cross(t0), 1e-9)
	assert.Greater(t, bez.Tangent(0).Dot(t0), 0.0)
	assert.InDelta(t, 0, bez.Tangent(1).Cross(t1), 1e-9)
	assert.Greater(t, bez.Tangent(1).Dot(t1), 0.0)
}

func TestBezierSplit(t *testing.T) {
	bez, _ := NewArc(Pt(1, 2), Pt(4, -2), -0.5).ApproximateBezier()

	left, right := bez.Split(0.3)
	assert.Equal(t, bez.P0, left.P0)
	assert.Equal(t, bez.P3, right.P3)
	assert.Equal(t, left.P3, right.P0)
	diff(t, bez.Eval(0.3), left.P3, approx)

	for _, s := range []float64{0.1, 0.5, 0.9} {
		diff(t, bez.Eval(0.3*s), left.Eval(s), approx)
		diff(t, bez.Eval(0.3+0.7*s), right.Eval(s), approx)
	}

	first, second := bez.Halve()
	diff(t, bez.Midpoint(), first.P3, approx)
	diff(t, bez.Midpoint(), second.P0, approx)
	diff(t, bez.Eval(0.5), bez.Midpoint(), approx)
}
