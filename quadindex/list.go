package quadindex

import "github.com/quandragoon/parallelCollisionDetection/segment"

type node struct {
	seg  *segment.Segment
	next *node
}

// List is an immutable singly-linked list of segments. Prepending returns a
// new List sharing the old one's tail, the way the source's line_list links
// let an upstream chain be handed to many recursive calls as a read-only
// reference rather than copied.
type List struct {
	head *node
	len  int
}

// Len returns the number of segments in the list.
func (l List) Len() int { return l.len }

// Prepend returns a new List with s as its head and l as its tail.
func (l List) Prepend(s *segment.Segment) List {
	return List{head: &node{seg: s, next: l.head}, len: l.len + 1}
}

// Each calls fn for every segment in the list, head first.
func (l List) Each(fn func(*segment.Segment)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.seg)
	}
}

// Chain is a read-only view over a sequence of Lists, letting the enumerator
// treat "this cell's straddlers plus everything upstream" as one logical
// sequence (§4.4's L' = L ∪ upstream) without copying any list's contents —
// each Extend only grows a slice of list headers, one per ancestor.
type Chain []List

// Len returns the total number of segments across every list in the chain.
func (c Chain) Len() int {
	n := 0
	for _, l := range c {
		n += l.Len()
	}
	return n
}

// Extend returns a new Chain with l appended, leaving c's backing lists
// untouched.
func (c Chain) Extend(l List) Chain {
	next := make(Chain, len(c), len(c)+1)
	copy(next, c)
	return append(next, l)
}

// Each calls fn for every segment across every list in the chain, in order.
func (c Chain) Each(fn func(*segment.Segment)) {
	for _, l := range c {
		l.Each(fn)
	}
}
