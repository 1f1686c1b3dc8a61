// Package quadindex builds the recursive spatial index the enumerator walks:
// a quadrant partition over a fixed box where a segment is placed at the
// deepest cell whose quadrants fully contain both its current and swept
// position, and left as a straddler at any cell it crosses a midline of.
package quadindex

import (
	"github.com/grailbio/base/traverse"
	"github.com/quandragoon/parallelCollisionDetection/segment"
	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

// Cell is one node of the index: a box, up to four child cells keyed by
// quadrant, and the straddler list of segments whose swept motion crosses
// this cell's midlines. NumTotal is the number of segments in the entire
// subtree rooted at this cell (straddlers plus every descendant's), used to
// decide whether enumeration recurses in parallel.
type Cell struct {
	XMin, XMax, YMin, YMax float64
	Q1, Q2, Q3, Q4         *Cell
	Straddlers             List
	NumTotal               int
}

type quadrant int

const (
	straddlerQuadrant quadrant = iota
	q1                         // SW
	q2                         // SE
	q3                         // NW
	q4                         // NE
)

// Build constructs the index over segs within the box (xmin,xmax,ymin,ymax)
// for a step of size dt. leafSize is N_LEAF: a cell with at most that many
// segments keeps them all as straddlers and does not recurse. parMin is
// PAR_MIN: subtrees at or below that size build their children
// sequentially rather than paying goroutine fan-out cost for a handful of
// segments.
func Build(segs []*segment.Segment, xmin, xmax, ymin, ymax, dt float64, leafSize, parMin int) *Cell {
	c := &Cell{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax, NumTotal: len(segs)}

	if len(segs) <= leafSize {
		for _, s := range segs {
			c.Straddlers = c.Straddlers.Prepend(s)
		}
		return c
	}

	var straddlers, bin1, bin2, bin3, bin4 []*segment.Segment
	for _, s := range segs {
		switch classifyQuadrant(s, c, dt) {
		case q1:
			bin1 = append(bin1, s)
		case q2:
			bin2 = append(bin2, s)
		case q3:
			bin3 = append(bin3, s)
		case q4:
			bin4 = append(bin4, s)
		default:
			straddlers = append(straddlers, s)
		}
	}
	for _, s := range straddlers {
		c.Straddlers = c.Straddlers.Prepend(s)
	}

	xmid := (xmin + xmax) / 2
	ymid := (ymin + ymax) / 2

	type childBuild struct {
		segs               []*segment.Segment
		bx0, bx1, by0, by1 float64
		dst                **Cell
	}
	candidates := []childBuild{
		{bin1, xmin, xmid, ymin, ymid, &c.Q1},
		{bin2, xmid, xmax, ymin, ymid, &c.Q2},
		{bin3, xmin, xmid, ymid, ymax, &c.Q3},
		{bin4, xmid, xmax, ymid, ymax, &c.Q4},
	}

	var active []childBuild
	for _, b := range candidates {
		if len(b.segs) > 0 {
			active = append(active, b)
		}
	}

	run := func(b childBuild) {
		*b.dst = Build(b.segs, b.bx0, b.bx1, b.by0, b.by1, dt, leafSize, parMin)
	}

	if len(segs) > parMin && len(active) > 1 {
		_ = traverse.Each(len(active), func(i int) error {
			run(active[i])
			return nil
		})
	} else {
		for _, b := range active {
			run(b)
		}
	}

	return c
}

// classifyQuadrant implements §4.3's classify(seg, cell, Δt): a segment
// belongs to a quadrant only if both its current endpoints and both its
// post-Δt endpoints lie strictly inside that same quadrant; otherwise it
// straddles this cell.
func classifyQuadrant(s *segment.Segment, c *Cell, dt float64) quadrant {
	p1, p2 := s.Points()
	v := s.Velocity()
	f1 := p1.Add(v.Scale(dt))
	f2 := p2.Add(v.Scale(dt))

	xmid := (c.XMin + c.XMax) / 2
	ymid := (c.YMin + c.YMax) / 2

	q := quadrantOf(p1, xmid, ymid)
	if q == straddlerQuadrant {
		return straddlerQuadrant
	}
	if quadrantOf(p2, xmid, ymid) != q {
		return straddlerQuadrant
	}
	if quadrantOf(f1, xmid, ymid) != q {
		return straddlerQuadrant
	}
	if quadrantOf(f2, xmid, ymid) != q {
		return straddlerQuadrant
	}
	return q
}

// quadrantOf reports which quadrant p falls strictly inside relative to
// (xmid, ymid), or straddlerQuadrant if p lies exactly on either midline.
func quadrantOf(p vec2.Vec2, xmid, ymid float64) quadrant {
	dx := p.X - xmid
	dy := p.Y - ymid
	switch {
	case dx < 0 && dy < 0:
		return q1
	case dx > 0 && dy < 0:
		return q2
	case dx < 0 && dy > 0:
		return q3
	case dx > 0 && dy > 0:
		return q4
	default:
		return straddlerQuadrant
	}
}
