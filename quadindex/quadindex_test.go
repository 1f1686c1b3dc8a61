package quadindex

import (
	"testing"

	"github.com/quandragoon/parallelCollisionDetection/segment"
	"github.com/quandragoon/parallelCollisionDetection/vec2"
	"github.com/stretchr/testify/assert"
)

func seg(id segment.ID, x, y float64) *segment.Segment {
	return segment.New(id, vec2.New(x, y), vec2.New(x+0.01, y), vec2.New(0, 0), 0.5, 1e-9)
}

func TestBuild_SmallSetStaysAtRoot(t *testing.T) {
	segs := []*segment.Segment{seg(1, 0.1, 0.1), seg(2, 0.8, 0.8)}
	root := Build(segs, 0, 1, 0, 1, 0.5, 32, 640)

	assert.Equal(t, 2, root.NumTotal)
	assert.Equal(t, 2, root.Straddlers.Len())
	assert.Nil(t, root.Q1)
}

func TestBuild_PartitionsByQuadrant(t *testing.T) {
	var segs []*segment.Segment
	id := segment.ID(1)
	// Pack 20 segments strictly inside each quadrant, 80 in all, which is more
	// than leafSize, so the root must recurse instead of keeping everything
	// as straddlers.
	for i := 0; i < 20; i++ {
		x := 0.1 + float64(i%5)*0.01
		segs = append(segs, seg(id, x, 0.1))
		id++
		segs = append(segs, seg(id, 0.9-float64(i%5)*0.01, 0.1))
		id++
		segs = append(segs, seg(id, 0.1+float64(i%5)*0.01, 0.9))
		id++
		segs = append(segs, seg(id, 0.9-float64(i%5)*0.01, 0.9))
		id++
	}

	root := Build(segs, 0, 1, 0, 1, 0.5, 32, 640)

	assert.Equal(t, len(segs), root.NumTotal)
	assert.NotNil(t, root.Q1)
	assert.NotNil(t, root.Q2)
	assert.NotNil(t, root.Q3)
	assert.NotNil(t, root.Q4)
	assert.Equal(t, 0, root.Straddlers.Len())
}

func TestBuild_StraddlerStaysAtParent(t *testing.T) {
	var segs []*segment.Segment
	id := segment.ID(1)
	for i := 0; i < 40; i++ {
		segs = append(segs, seg(id, 0.1, 0.1))
		id++
	}
	// Crosses both midlines (x=0.5, y=0.5): classifies as a straddler.
	straddler := seg(id, 0.49, 0.49)
	straddler.SetVelocity(vec2.New(0.1, 0.1))
	straddler.RecomputeSweptAABB(0.5, 1e-9)
	segs = append(segs, straddler)

	root := Build(segs, 0, 1, 0, 1, 0.5, 32, 640)

	found := false
	root.Straddlers.Each(func(s *segment.Segment) {
		if s.ID() == straddler.ID() {
			found = true
		}
	})
	assert.True(t, found)
}

func TestChain_Extend(t *testing.T) {
	var l1, l2 List
	l1 = l1.Prepend(seg(1, 0, 0))
	l2 = l2.Prepend(seg(2, 0, 0))

	var c Chain
	c = c.Extend(l1)
	c = c.Extend(l2)

	assert.Equal(t, 2, c.Len())

	var seen []segment.ID
	c.Each(func(s *segment.Segment) { seen = append(seen, s.ID()) })
	assert.ElementsMatch(t, []segment.ID{1, 2}, seen)
}
