package classify

import "github.com/quandragoon/parallelCollisionDetection/vec2"

// SegCross reports whether segment (p1,p2) and segment (p3,p4) cross: the
// strict straddle test (each segment's endpoints fall on strictly opposite
// sides of the other's supporting line), plus the four collinear fallbacks
// for when an endpoint lands exactly on the other segment's line — in that
// case the crossing holds iff the endpoint also falls within the other
// segment's own span, not just its line.
func SegCross(p1, p2, p3, p4 vec2.Vec2) bool {
	d1 := PointOrientation(p3, p4, p1)
	d2 := PointOrientation(p3, p4, p2)
	d3 := PointOrientation(p1, p2, p3)
	d4 := PointOrientation(p1, p2, p4)

	if straddles(d1, d2) && straddles(d3, d4) {
		return true
	}
	if d1 == Collinear && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == Collinear && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == Collinear && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == Collinear && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

// straddles reports whether a and b are strictly opposite, non-collinear
// orientations.
func straddles(a, b Orientation) bool {
	return a != Collinear && b != Collinear && a != b
}

// onSegment reports whether pk, already known to be collinear with pi and
// pj, lies within (pi, pj)'s own span rather than merely on its supporting
// line — an inclusive bounding-box containment check on both coordinates, so
// a point exactly at either endpoint counts as on the segment.
func onSegment(pi, pj, pk vec2.Vec2) bool {
	return between(pi.X, pk.X, pj.X) && between(pi.Y, pk.Y, pj.Y)
}

// between reports whether x falls within [a, b] regardless of which of a, b
// is larger.
func between(a, x, b float64) bool {
	return (a <= x && x <= b) || (b <= x && x <= a)
}

// edgeSide returns the signed area of the triangle (pi, pj, pk), used by
// PointInParallelogram to test which side of edge (pi,pj) the point pk
// falls on.
func edgeSide(pi, pj, pk vec2.Vec2) float64 {
	return pk.Sub(pi).Cross(pj.Sub(pi))
}

// PointInParallelogram reports whether p lies strictly inside the
// parallelogram whose opposite-side pairs are (q1,q2)/(q3,q4) and
// (q1,q3)/(q2,q4) — i.e. corners in order q1, q2, q4, q3. p must fall
// strictly on opposite sides of both edge pairs; lying exactly on an edge
// does not count as inside. Each pair is tested with a single sign
// comparison, so a point already known to fail the first pair short-circuits
// before the second is evaluated.
func PointInParallelogram(p, q1, q2, q3, q4 vec2.Vec2) bool {
	d1 := edgeSide(q1, q2, p)
	d2 := edgeSide(q3, q4, p)
	if !oppositeSigns(d1, d2) {
		return false
	}
	d3 := edgeSide(q1, q3, p)
	d4 := edgeSide(q2, q4, p)
	return oppositeSigns(d3, d4)
}

func oppositeSigns(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
