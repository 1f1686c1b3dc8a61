// Package resolve orders collision events deterministically and applies the
// conservation-law velocity updates described by §4.5.
package resolve

import (
	"fmt"

	"github.com/google/btree"

	"github.com/quandragoon/parallelCollisionDetection/classify"
	"github.com/quandragoon/parallelCollisionDetection/event"
	"github.com/quandragoon/parallelCollisionDetection/segment"
	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

// btreeDegree is arbitrary; event counts per step are small (§4.5: "the
// per-step event count is small"), so this has no measurable performance
// effect. It only needs to be at least 2.
const btreeDegree = 32

// Order sorts events into the canonical (a.id, b.id) resolution order. Any
// comparator-stable sort is permitted by §4.5; a B-tree gives us that
// without hand-rolling a selection sort, and produces the same order
// regardless of which goroutine discovered which pair first.
func Order(events []event.IntersectionEvent) []event.IntersectionEvent {
	tree := btree.NewG(btreeDegree, event.Less)
	for _, e := range events {
		tree.ReplaceOrInsert(e)
	}

	ordered := make([]event.IntersectionEvent, 0, tree.Len())
	tree.Ascend(func(e event.IntersectionEvent) bool {
		ordered = append(ordered, e)
		return true
	})
	return ordered
}

// Resolve applies each event's velocity update, in the order given. Callers
// must pass an already-ordered slice (see Order); applying updates out of
// (a.id, b.id) order would make a step's outcome depend on scheduling,
// which §4.5 explicitly rules out.
func Resolve(events []event.IntersectionEvent) {
	for _, e := range events {
		resolveOne(e)
	}
}

func resolveOne(e event.IntersectionEvent) {
	switch e.Classification {
	case classify.AlreadyOverlapping:
		resolveOverlap(e)
	case classify.ASweepsB:
		resolveSweep(e, e.B)
	case classify.BSweepsA:
		resolveSweep(e, e.A)
	default:
		panic(fmt.Sprintf("resolve: unexpected classification %d for segments %d and %d", e.Classification, e.A.ID(), e.B.ID()))
	}
}

// resolveOverlap handles the degenerate case where two segments already
// intersect at their current positions: each segment turns to point its
// farther endpoint away from the intersection point, at unchanged speed,
// so that penetration resolves in the fewest possible steps.
func resolveOverlap(e event.IntersectionEvent) {
	a1, a2 := e.A.Points()
	b1, b2 := e.B.Points()
	p := classify.IntersectionPoint(a1, a2, b1, b2)

	e.A.SetVelocity(escapeVelocity(e.A, p))
	e.B.SetVelocity(escapeVelocity(e.B, p))
}

func escapeVelocity(s *segment.Segment, p vec2.Vec2) vec2.Vec2 {
	p1, p2 := s.Points()
	speed := s.Velocity().Length()

	far := p1
	if p1.Sub(p).Length() < p2.Sub(p).Length() {
		far = p2
	}
	return far.Sub(p).Normalize().Scale(speed)
}

// resolveSweep handles the A_SWEEPS_B / B_SWEEPS_A cases. faceSeg is the
// segment treated as the stationary collision face: b for A_SWEEPS_B, a for
// B_SWEEPS_A. Its unit tangent is the face axis; the normal is that tangent
// rotated 90°. Velocities decompose into face/normal components; the 1D
// elastic-collision formula is applied along the normal using each
// segment's mass (its length), and the face components are preserved.
func resolveSweep(e event.IntersectionEvent, faceSeg *segment.Segment) {
	fp1, fp2 := faceSeg.Points()
	face := fp2.Sub(fp1).Normalize()
	normal := face.Orthogonal()

	a, b := e.A, e.B
	v1, v2 := a.Velocity(), b.Velocity()
	v1Face, v2Face := v1.Dot(face), v2.Dot(face)
	v1Normal, v2Normal := v1.Dot(normal), v2.Dot(normal)

	m1, m2 := a.Mass(), b.Mass()

	newV1Normal := ((m1-m2)*v1Normal + 2*m2*v2Normal) / (m1 + m2)
	newV2Normal := (2*m1*v1Normal + (m2-m1)*v2Normal) / (m1 + m2)

	a.SetVelocity(normal.Scale(newV1Normal).Add(face.Scale(v1Face)))
	b.SetVelocity(normal.Scale(newV2Normal).Add(face.Scale(v2Face)))
}
