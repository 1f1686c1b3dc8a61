// Package segment defines Segment, the moving line segment the rest of the
// engine operates on: two endpoints, a velocity, a mass (its current
// length), a stable identity used to canonicalize pairs, and a cached
// axis-aligned bounding box of its swept motion.
package segment

import (
	"math"

	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

// ID is a segment's stable identity. IDs induce a strict total order
// (compare(a,b) < 0 iff a.ID < b.ID) used to canonicalize pairs, event
// identity, and the resolver's per-event update order.
type ID uint64

// Segment is a moving line segment confined to the engine's world box.
// Mass is recomputed from the endpoints whenever they change; it is not an
// independent field a caller can set directly, matching the source's
// deliberate modeling choice that mass equals length.
type Segment struct {
	id       ID
	p1, p2   vec2.Vec2
	velocity vec2.Vec2
	mass     float64

	// swept AABB of the current position and the position after one Δt at
	// the current velocity, padded by epsilon.
	lx, ux, ly, uy float64
}

// New creates a Segment with the given identity, endpoints and velocity,
// and computes its mass and swept AABB for the given Δt and epsilon pad.
// id must be unique within the engine that owns the segment; this is the
// caller's responsibility, not Segment's.
func New(id ID, p1, p2, velocity vec2.Vec2, dt, epsilon float64) *Segment {
	s := &Segment{id: id, p1: p1, p2: p2, velocity: velocity}
	s.mass = p1.Sub(p2).Length()
	s.RecomputeSweptAABB(dt, epsilon)
	return s
}

// ID returns the segment's stable identity.
func (s *Segment) ID() ID { return s.id }

// Points returns the segment's current endpoints.
func (s *Segment) Points() (p1, p2 vec2.Vec2) { return s.p1, s.p2 }

// Velocity returns the segment's current velocity.
func (s *Segment) Velocity() vec2.Vec2 { return s.velocity }

// SetVelocity replaces the segment's velocity. Callers that mutate velocity
// outside of Advance/resolver logic (e.g. the wall-reflection pass) are
// responsible for recomputing the swept AABB before the next enumeration.
func (s *Segment) SetVelocity(v vec2.Vec2) { s.velocity = v }

// Mass returns the segment's mass, equal to its current length.
func (s *Segment) Mass() float64 { return s.mass }

// Direction returns the unit vector from p1 to p2, or the zero vector if
// the segment is degenerate (p1 == p2).
func (s *Segment) Direction() vec2.Vec2 {
	return s.p2.Sub(s.p1).Normalize()
}

// Advance moves the segment's endpoints by velocity*dt, the way
// CollisionWorld_updatePosition moves every line in the original source.
// It does not recompute the swept AABB; callers must do so (or rely on the
// next engine_step's index build) before reusing it for enumeration.
func (s *Segment) Advance(dt float64) {
	d := s.velocity.Scale(dt)
	s.p1 = s.p1.Add(d)
	s.p2 = s.p2.Add(d)
}

// SweptAABB returns the cached axis-aligned bounding box covering both the
// segment's current position and its position after Δt at the current
// velocity, padded by a small epsilon. It is valid for the (p1,p2,v,Δt)
// combination in effect when RecomputeSweptAABB was last called.
func (s *Segment) SweptAABB() (xmin, xmax, ymin, ymax float64) {
	return s.lx, s.ux, s.ly, s.uy
}

// RecomputeSweptAABB recomputes the cached swept AABB for the given Δt and
// epsilon pad. The classifier's AABB early-out (§4.1 step 1) is
// correctness-neutral but performance-material, so an implementation should
// always keep this cache current before enumeration; the engine calls this
// once per segment per step.
func (s *Segment) RecomputeSweptAABB(dt, epsilon float64) {
	q1 := s.p1.Add(s.velocity.Scale(dt))
	q2 := s.p2.Add(s.velocity.Scale(dt))

	xmin := math.Min(math.Min(s.p1.X, s.p2.X), math.Min(q1.X, q2.X))
	xmax := math.Max(math.Max(s.p1.X, s.p2.X), math.Max(q1.X, q2.X))
	ymin := math.Min(math.Min(s.p1.Y, s.p2.Y), math.Min(q1.Y, q2.Y))
	ymax := math.Max(math.Max(s.p1.Y, s.p2.Y), math.Max(q1.Y, q2.Y))

	s.lx, s.ux = xmin-epsilon, xmax+epsilon
	s.ly, s.uy = ymin-epsilon, ymax+epsilon
}

// SweptAABBOverlaps reports whether the swept AABBs of a and b overlap.
// This is the classifier's first, cheap rejection test (§4.1 step 1).
func SweptAABBOverlaps(a, b *Segment) bool {
	if a.ux < b.lx || b.ux < a.lx {
		return false
	}
	if a.uy < b.ly || b.uy < a.ly {
		return false
	}
	return true
}

// Compare returns a strict total order over segments by ID: negative if
// a.ID() < b.ID(), positive if greater, zero if equal (which cannot happen
// for two distinct segments owned by the same engine).
func Compare(a, b *Segment) int {
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	default:
		return 0
	}
}

// Canonical returns a, b reordered so that Compare(first, second) < 0, the
// way every API that expects a canonical pair requires. It panics if a and
// b carry the same ID, which would indicate two distinct Segment values
// sharing an identity — an invariant violation, not a recoverable input.
func Canonical(a, b *Segment) (first, second *Segment) {
	switch Compare(a, b) {
	case 0:
		panic("segment: Canonical called with equal IDs")
	case -1:
		return a, b
	default:
		return b, a
	}
}
