package advanced

import "fmt"

// SignedVector is a displacement plus the side of a boundary the originating
// point lies on. It is an intermediate of the distance queries.
type SignedVector struct {
	Vec      Vec2
	Negative bool
}

func (sv SignedVector) Neg() SignedVector {
	return SignedVector{Vec: sv.Vec.Neg(), Negative: !sv.Negative}
}

func (sv SignedVector) Equals(o SignedVector) bool {
	return Equal(sv.Vec.X, o.Vec.X) && Equal(sv.Vec.Y, o.Vec.Y) && sv.Negative == o.Negative
}

func (sv SignedVector) String() string {
	sign := "+"
	if sv.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s", sign, sv.Vec)
}
