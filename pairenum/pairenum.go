// Package pairenum implements the parallel traversal that walks a built
// quadindex.Cell tree and reports every intersecting pair of segments
// exactly once, as classified events.
package pairenum

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/grailbio/base/traverse"

	"github.com/quandragoon/parallelCollisionDetection/classify"
	"github.com/quandragoon/parallelCollisionDetection/event"
	"github.com/quandragoon/parallelCollisionDetection/quadindex"
	"github.com/quandragoon/parallelCollisionDetection/segment"
)

// Enumerate walks root and returns every intersecting pair discovered within
// a step of size dt, each pair present exactly once (§4.4). parMin is
// PAR_MIN: a cell's children are only traversed in parallel when the
// subtree has more than that many segments.
func Enumerate(root *quadindex.Cell, dt float64, parMin int) []event.IntersectionEvent {
	acc := enumerate(root, nil, dt, parMin)

	out := make([]event.IntersectionEvent, 0, acc.Size())
	it := acc.Iterator()
	for it.Next() {
		out = append(out, it.Value().(event.IntersectionEvent))
	}
	return out
}

// enumerate implements §4.4's per-cell step: pair the cell's own straddlers
// against each other and against the upstream chain, then recurse into each
// non-nil child with the union of this cell's straddlers and upstream as
// the child's own upstream.
func enumerate(c *quadindex.Cell, upstream quadindex.Chain, dt float64, parMin int) *doublylinkedlist.List {
	acc := doublylinkedlist.New()

	var own []*segment.Segment
	c.Straddlers.Each(func(s *segment.Segment) { own = append(own, s) })

	for i := 0; i < len(own); i++ {
		for j := i + 1; j < len(own); j++ {
			emit(acc, own[i], own[j], dt)
		}
	}

	if upstream.Len() > 0 {
		for _, a := range own {
			upstream.Each(func(b *segment.Segment) {
				emit(acc, a, b, dt)
			})
		}
	}

	next := upstream.Extend(c.Straddlers)

	active := nonNilChildren(c)
	if len(active) == 0 {
		return acc
	}

	results := make([]*doublylinkedlist.List, len(active))
	if c.NumTotal > parMin && len(active) > 1 {
		_ = traverse.Each(len(active), func(i int) error {
			results[i] = enumerate(active[i], next, dt, parMin)
			return nil
		})
	} else {
		for i, ch := range active {
			results[i] = enumerate(ch, next, dt, parMin)
		}
	}

	// Concatenated in child order (Q1, Q2, Q3, Q4), matching the order
	// nonNilChildren produced them in.
	for _, r := range results {
		acc.Add(r.Values()...)
	}
	return acc
}

// nonNilChildren returns c's non-nil children in Q1, Q2, Q3, Q4 order.
func nonNilChildren(c *quadindex.Cell) []*quadindex.Cell {
	var active []*quadindex.Cell
	for _, ch := range []*quadindex.Cell{c.Q1, c.Q2, c.Q3, c.Q4} {
		if ch != nil {
			active = append(active, ch)
		}
	}
	return active
}

// emit classifies the pair (a, b) and, if they intersect within the step,
// appends a canonical event to acc.
func emit(acc *doublylinkedlist.List, a, b *segment.Segment, dt float64) {
	first, second := segment.Canonical(a, b)
	class := classify.Intersect(first, second, dt)
	if class == classify.None {
		return
	}
	acc.Add(event.New(first, second, class))
}
