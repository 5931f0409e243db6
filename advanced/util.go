package advanced

import "math"

// Epsilon is the absolute tolerance for coordinate and curvature equality.
const Epsilon = 1e-4

// Infinity is the curvature sentinel that marks the start of a new sub-path.
var Infinity = math.Inf(1)

// To compensate for imprecision in floats, equality is tolerance based. Points
// that come out of the arc fitter are never bit-identical even when they are
// meant to coincide.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func IsZero(v float64) bool {
	return Equal(v, 0)
}

func xor(a, b bool) bool {
	return a != b
}
