package classify

import (
	"testing"

	"github.com/quandragoon/parallelCollisionDetection/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointOrientation(t *testing.T) {
	assert.Equal(t, Counterclockwise, PointOrientation(vec2.New(0, 0), vec2.New(1, 0), vec2.New(1, 1)))
	assert.Equal(t, Clockwise, PointOrientation(vec2.New(0, 0), vec2.New(1, 0), vec2.New(1, -1)))
	assert.Equal(t, Collinear, PointOrientation(vec2.New(0, 0), vec2.New(1, 0), vec2.New(2, 0)))
}

func TestOrientation_String_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() {
		_ = Orientation(42).String()
	})
}

func TestSegCross(t *testing.T) {
	cases := map[string]struct {
		p1, p2, p3, p4 vec2.Vec2
		want           bool
	}{
		"crossing X": {
			p1: vec2.New(0, 0), p2: vec2.New(2, 2),
			p3: vec2.New(0, 2), p4: vec2.New(2, 0),
			want: true,
		},
		"parallel, no cross": {
			p1: vec2.New(0, 0), p2: vec2.New(2, 0),
			p3: vec2.New(0, 1), p4: vec2.New(2, 1),
			want: false,
		},
		"touching endpoint only (collinear)": {
			// p3 coincides with p2: the shared endpoint is inclusively "on
			// segment" (p1,p2), matching onSegment's <= bounds.
			p1: vec2.New(0, 0), p2: vec2.New(2, 0),
			p3: vec2.New(2, 0), p4: vec2.New(3, 0),
			want: true,
		},
		"collinear, disjoint spans": {
			p1: vec2.New(0, 0), p2: vec2.New(2, 0),
			p3: vec2.New(3, 0), p4: vec2.New(4, 0),
			want: false,
		},
		"collinear, overlapping spans": {
			p1: vec2.New(0, 0), p2: vec2.New(2, 0),
			p3: vec2.New(1, 0), p4: vec2.New(3, 0),
			want: true,
		},
		"disjoint": {
			p1: vec2.New(0, 0), p2: vec2.New(1, 0),
			p3: vec2.New(5, 5), p4: vec2.New(6, 6),
			want: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, SegCross(tc.p1, tc.p2, tc.p3, tc.p4))
		})
	}
}

func TestPointInParallelogram(t *testing.T) {
	// Unit square traced out as q1=(0,0), q2=(1,0), q3=(0,1), q4=(1,1).
	q1, q2, q3, q4 := vec2.New(0, 0), vec2.New(1, 0), vec2.New(0, 1), vec2.New(1, 1)

	assert.True(t, PointInParallelogram(vec2.New(0.5, 0.5), q1, q2, q3, q4))
	assert.False(t, PointInParallelogram(vec2.New(2, 2), q1, q2, q3, q4))
	assert.False(t, PointInParallelogram(vec2.New(0, 0.5), q1, q2, q3, q4)) // on an edge
}
