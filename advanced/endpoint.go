package advanced

import (
	"fmt"
	"math"
)

// Endpoint is one vertex of a glyph outline as produced by the arc fitter. D
// is the curvature of the arc arriving at P from the previous endpoint, or
// Infinity if P starts a new sub-path.
type Endpoint struct {
	P Point
	D float64
}

func NewEndpoint(x, y, d float64) Endpoint {
	return Endpoint{P: Point{X: x, Y: y}, D: d}
}

// IsMove reports whether the endpoint starts a new sub-path.
func (e Endpoint) IsMove() bool {
	return math.IsInf(e.D, 1)
}

// IsLine reports whether the endpoint is reached by a straight segment.
func (e Endpoint) IsLine() bool {
	return e.D == 0
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s d=%g", e.P, e.D)
}

// EndpointSource is an ordered endpoint sequence for one glyph, queried by
// index.
type EndpointSource interface {
	Len() int
	Endpoint(i int) Endpoint
}

type EndpointList []Endpoint

func (l EndpointList) Len() int {
	return len(l)
}

func (l EndpointList) Endpoint(i int) Endpoint {
	return l[i]
}

// Outline returns the bounding box of the outline the endpoints describe,
// including the bulge of every arc.
func Outline(src EndpointSource) Extents {
	result := NewExtents()
	var current Point
	hasCurrent := false
	var arcExtents Extents
	for i := 0; i < src.Len(); i++ {
		ep := src.Endpoint(i)
		if ep.IsMove() || !hasCurrent {
			result.Add(ep.P)
		} else {
			NewArc(current, ep.P, ep.D).Extents(&arcExtents)
			result.Extend(arcExtents)
		}
		current = ep.P
		hasCurrent = true
	}
	return result
}
