// Package event defines the collision event the enumerator produces and the
// resolver consumes: a canonical pair of segments plus how they intersect.
package event

import (
	"github.com/quandragoon/parallelCollisionDetection/classify"
	"github.com/quandragoon/parallelCollisionDetection/segment"
)

// IntersectionEvent records that segments A and B intersect within a step,
// and how. A and B are always in canonical order: segment.Compare(A, B) < 0.
type IntersectionEvent struct {
	A, B           *segment.Segment
	Classification classify.Type
}

// New builds an IntersectionEvent, canonicalizing a and b regardless of the
// order the caller discovered them in and the order class was computed
// against. If canonicalizing swaps the pair, class is relabeled to match
// (classify.Type.Swap), so the returned event's Classification is always
// stated in terms of the canonical A, B it carries — an ASweepsB/BSweepsA
// passed for (a, b) therefore comes back correctly as BSweepsA/ASweepsB when
// a and b land in the other order. It panics if a and b are the same segment
// (by ID), mirroring segment.Canonical's own invariant.
func New(a, b *segment.Segment, class classify.Type) IntersectionEvent {
	first, second := segment.Canonical(a, b)
	if first != a {
		class = class.Swap()
	}
	return IntersectionEvent{A: first, B: second, Classification: class}
}

// Less reports whether e sorts before other under the canonical event order:
// by A's ID, then by B's ID. This is the comparator the resolver's ordered
// event structure sorts with, so that repeated runs over the same segment
// set produce the same resolution order regardless of which goroutine
// discovered which pair first.
func Less(e, other IntersectionEvent) bool {
	if e.A.ID() != other.A.ID() {
		return e.A.ID() < other.A.ID()
	}
	return e.B.ID() < other.B.ID()
}
