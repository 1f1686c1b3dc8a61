// Package classify implements the swept-segment intersection predicates:
// point orientation, the segment-crossing test, point-in-parallelogram,
// and the swept-intersection classifier that combines them into one of four
// outcomes for a canonical pair of segments over one time step.
package classify

import (
	"math"

	"github.com/quandragoon/parallelCollisionDetection/segment"
	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

// Type classifies how a canonical pair of segments will interact within a
// time step.
type Type uint8

const (
	// None indicates the segments will not intersect within the step.
	None Type = iota
	// ASweepsB indicates a's swept motion crosses into b's current position
	// from outside the parallelogram b traces.
	ASweepsB
	// BSweepsA indicates b's swept motion crosses through a's position.
	BSweepsA
	// AlreadyOverlapping indicates the segments already intersect at their
	// current positions.
	AlreadyOverlapping
)

// Swap returns t relabeled for a pair whose A and B have been swapped:
// ASweepsB and BSweepsA trade places, while None and AlreadyOverlapping,
// being order-independent, are returned unchanged.
func (t Type) Swap() Type {
	switch t {
	case ASweepsB:
		return BSweepsA
	case BSweepsA:
		return ASweepsB
	default:
		return t
	}
}

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case ASweepsB:
		return "ASweepsB"
	case BSweepsA:
		return "BSweepsA"
	case AlreadyOverlapping:
		return "AlreadyOverlapping"
	default:
		panic("classify: unsupported Type")
	}
}

// Intersect classifies the interaction of segments a and b over the next
// Δt. Precondition: segment.Compare(a, b) < 0 (a canonical pair) — callers
// must pass the result of segment.Canonical, not raw insertion order.
//
// The parallelogram b traces in a's frame is q1, q2, b2, b1 (in order),
// where q1 = b1 + u, q2 = b2 + u, and u = (b.velocity - a.velocity) * Δt is
// the relative displacement. Its three open sides are the far side
// (q1, q2), the top (b1, q1) and the bottom (b2, q2); the fourth side,
// (b1, b2), is b's current position and is handled by the already-overlapping
// test rather than counted as a crossing.
func Intersect(a, b *segment.Segment, dt float64) Type {
	if !segment.SweptAABBOverlaps(a, b) {
		return None
	}

	a1, a2 := a.Points()
	b1, b2 := b.Points()
	u := b.Velocity().Sub(a.Velocity()).Scale(dt)
	q1 := b1.Add(u)
	q2 := b2.Add(u)

	if SegCross(a1, a2, b1, b2) {
		return AlreadyOverlapping
	}

	far := SegCross(a1, a2, q1, q2)
	top := SegCross(a1, a2, b1, q1)
	bottom := SegCross(a1, a2, b2, q2)

	sides := 0
	if far {
		sides++
	}
	if top {
		sides++
	}
	if bottom {
		sides++
	}

	switch {
	case sides == 2:
		return BSweepsA
	case PointInParallelogram(a1, b1, b2, q1, q2) && PointInParallelogram(a2, b1, b2, q1, q2):
		return ASweepsB
	case sides == 0:
		return None
	}

	// Exactly one side crossed: the parallelogram test alone can't tell
	// whether a swept into b or b swept into a, so disambiguate by the
	// signed angle between the two segments' direction vectors.
	angle := a2.Sub(a1).Angle(b2.Sub(b1))
	switch {
	case top && angle < 0:
		return BSweepsA
	case bottom && angle > 0:
		return BSweepsA
	default:
		return ASweepsB
	}
}

// IntersectionPoint computes where segments (a1,a2) and (b1,b2) cross, using
// the standard two-line intersection formula. When the segments are
// (near-)parallel the formula's denominator vanishes; IntersectionPoint then
// falls back to the midpoint of (a1,a2)'s overlap with (b1,b2) projected
// onto a's own direction, per the resolver's tolerance for the
// AlreadyOverlapping degenerate case (nearly-coincident segments).
func IntersectionPoint(a1, a2, b1, b2 vec2.Vec2) vec2.Vec2 {
	da := a2.Sub(a1)
	db := b2.Sub(b1)

	denom := da.Cross(db)
	if math.Abs(denom) < vec2.Epsilon() {
		return overlapMidpoint(a1, a2, b1, b2)
	}

	u := db.Cross(a1.Sub(b1)) / denom
	return a1.Add(da.Scale(u))
}

// overlapMidpoint returns the midpoint of the span of (a1,a2) that overlaps
// the projection of (b1,b2) onto a's direction. If the projected ranges
// don't actually overlap (possible for merely near-parallel, non-coincident
// segments) it falls back to a's own midpoint.
func overlapMidpoint(a1, a2, b1, b2 vec2.Vec2) vec2.Vec2 {
	d := a2.Sub(a1)
	length := d.Length()
	if length == 0 {
		return a1
	}
	unit := d.Scale(1 / length)
	proj := func(p vec2.Vec2) float64 { return p.Sub(a1).Dot(unit) }

	lo := math.Max(0, math.Min(proj(b1), proj(b2)))
	hi := math.Min(length, math.Max(proj(b1), proj(b2)))
	if lo > hi {
		lo, hi = 0, length
	}

	mid := (lo + hi) / 2
	return a1.Add(unit.Scale(mid))
}
