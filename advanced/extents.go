package advanced

import (
	"fmt"
	"math"
)

// Extents is an axis-aligned bounding box that grows as points are added. The
// zero value is not empty; call Clear (or use NewExtents) before accumulating.
// An Extents is owned by whoever is accumulating into it and is not safe for
// concurrent use.
type Extents struct {
	MinX, MinY, MaxX, MaxY float64
}

func NewExtents() Extents {
	var e Extents
	e.Clear()
	return e
}

// Clear makes the extents empty.
func (e *Extents) Clear() {
	e.MinX, e.MinY = math.Inf(1), math.Inf(1)
	e.MaxX, e.MaxY = math.Inf(-1), math.Inf(-1)
}

func (e *Extents) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

func (e *Extents) Add(p Point) {
	e.MinX = math.Min(e.MinX, p.X)
	e.MinY = math.Min(e.MinY, p.Y)
	e.MaxX = math.Max(e.MaxX, p.X)
	e.MaxY = math.Max(e.MaxY, p.Y)
}

// Extend grows e to cover o. Empty extents are ignored.
func (e *Extents) Extend(o Extents) {
	if o.IsEmpty() {
		return
	}
	e.Add(Point{X: o.MinX, Y: o.MinY})
	e.Add(Point{X: o.MaxX, Y: o.MaxY})
}

func (e *Extents) Contains(p Point) bool {
	return p.X >= e.MinX && p.X <= e.MaxX && p.Y >= e.MinY && p.Y <= e.MaxY
}

func (e *Extents) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxX - e.MinX
}

func (e *Extents) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxY - e.MinY
}

func (e Extents) String() string {
	if e.IsEmpty() {
		return "Extents{}"
	}
	return fmt.Sprintf("Extents{(%g, %g) – (%g, %g)}", e.MinX, e.MinY, e.MaxX, e.MaxY)
}
