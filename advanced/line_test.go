package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineFromPoints(t *testing.T) {
	l := LineFromPoints(Pt(0, 0), Pt(2, 0))
	assert.Equal(t, Vec(0, 2), l.N)
	assert.Equal(t, 0.0, l.C)

	n := Line{N: Vec(0, 2), C: 4}.Normalized()
	assert.Equal(t, Vec(0, 1), n.N)
	assert.Equal(t, 2.0, n.C)

	// Zero normals are left alone
	z := Line{C: 3}
	assert.Equal(t, z, z.Normalized())
}

func TestLineSub(t *testing.T) {
	l := LineFromPoints(Pt(0, 0), Pt(2, 0))

	above := l.Sub(Pt(1, 1))
	assert.True(t, above.Equals(SignedVector{Vec: Vec(0, -1), Negative: true}), "got %s", above)

	below := l.Sub(Pt(5, -3))
	assert.True(t, below.Equals(SignedVector{Vec: Vec(0, 3), Negative: false}), "got %s", below)

	// Degenerate line
	assert.Equal(t, SignedVector{}, Line{}.Sub(Pt(1, 1)))
}

func TestLineIntersect(t *testing.T) {
	horizontal := LineFromPoints(Pt(0, 0), Pt(2, 0))
	vertical := LineFromPoints(Pt(1, -1), Pt(1, 1))

	p := horizontal.Intersect(vertical)
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)

	parallel := LineFromPoints(Pt(0, 1), Pt(2, 1))
	assert.True(t, horizontal.Intersect(parallel).IsInf())
}

func TestSignedVector(t *testing.T) {
	sv := SignedVector{Vec: Vec(1, -2), Negative: true}
	assert.Equal(t, SignedVector{Vec: Vec(-1, 2), Negative: false}, sv.Neg())
	assert.Equal(t, sv, sv.Neg().Neg())
	assert.Equal(t, "-⟨1, -2⟩", sv.String())
}
