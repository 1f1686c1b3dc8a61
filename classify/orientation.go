package classify

import (
	"fmt"

	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

// Orientation represents the relative orientation of three points in the
// plane, following the teacher library's convention of a small enum type
// with a String method that panics on an unrecognized value rather than
// returning a meaningless label.
type Orientation uint8

const (
	// Collinear indicates a, b, c lie on a straight line.
	Collinear Orientation = iota
	// Counterclockwise indicates a left turn from (b-a) to (c-a).
	Counterclockwise
	// Clockwise indicates a right turn from (b-a) to (c-a).
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("classify: unsupported Orientation: %d", o))
	}
}

// PointOrientation computes the orientation of the ordered triple (a, b, c):
// the sign of the cross product of (b-a) and (c-a). Unlike the teacher's
// point.Orientation, this uses strict zero comparison rather than an
// adaptive epsilon — §4.1 requires zero to count as one side for the
// strict segment-intersection predicate, with epsilon handled separately
// by the swept-AABB pre-test.
func PointOrientation(a, b, c vec2.Vec2) Orientation {
	val := b.Sub(a).Cross(c.Sub(a))
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Counterclockwise
	default:
		return Clockwise
	}
}
