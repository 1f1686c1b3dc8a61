// Package engine ties the spatial index, classifier, enumerator and
// resolver together into the external interface a driver steps: add
// segments, advance the simulation one Δt at a time, and read the running
// wall/line-line collision counters.
package engine

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"

	"github.com/quandragoon/parallelCollisionDetection/options"
	"github.com/quandragoon/parallelCollisionDetection/pairenum"
	"github.com/quandragoon/parallelCollisionDetection/quadindex"
	"github.com/quandragoon/parallelCollisionDetection/resolve"
	"github.com/quandragoon/parallelCollisionDetection/segment"
	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

// Engine owns a fixed-capacity set of segments and steps them through the
// build/enumerate/resolve/advance/wall-reflect pipeline.
type Engine struct {
	opts     options.EngineOptions
	capacity int
	segments []*segment.Segment
	byID     map[segment.ID]*segment.Segment
	nextID   segment.ID

	wallTotal int
	lineTotal int
}

// New creates an Engine with room for up to capacity segments. capacity must
// be positive, and the world box configured via options.WithWorldBox (or the
// default) must have xmin < xmax and ymin < ymax.
func New(capacity int, opts ...options.EngineOptionFunc) (*Engine, error) {
	if capacity <= 0 {
		return nil, errors.E("engine.New: capacity must be positive", fmt.Sprintf("capacity=%d", capacity))
	}
	o := options.Apply(options.Default(), opts...)
	if o.BoxXMin >= o.BoxXMax || o.BoxYMin >= o.BoxYMax {
		return nil, errors.E("engine.New: invalid world box", fmt.Sprintf("xmin=%g xmax=%g ymin=%g ymax=%g", o.BoxXMin, o.BoxXMax, o.BoxYMin, o.BoxYMax))
	}
	return &Engine{
		opts:     o,
		capacity: capacity,
		segments: make([]*segment.Segment, 0, capacity),
		byID:     make(map[segment.ID]*segment.Segment, capacity),
	}, nil
}

// AddSegment creates a new segment from its endpoints and velocity and adds
// it to the engine, returning its assigned ID. It fails once the engine is
// at capacity.
func (e *Engine) AddSegment(p1, p2, velocity vec2.Vec2) (segment.ID, error) {
	if len(e.segments) >= e.capacity {
		return 0, errors.E("engine.AddSegment: at capacity", fmt.Sprintf("capacity=%d", e.capacity))
	}
	id := e.nextID
	e.nextID++

	s := segment.New(id, p1, p2, velocity, e.opts.TimeStep, e.opts.Epsilon)
	e.segments = append(e.segments, s)
	e.byID[id] = s
	return id, nil
}

// GetSegment returns the segment with the given ID.
func (e *Engine) GetSegment(id segment.ID) (*segment.Segment, error) {
	s, ok := e.byID[id]
	if !ok {
		return nil, errors.E("engine.GetSegment: no such segment", fmt.Sprintf("id=%d", id))
	}
	return s, nil
}

// GetCounters returns the running totals of wall and line-line collisions
// accumulated since the engine was created.
func (e *Engine) GetCounters() (wallCollisions, lineLineCollisions int) {
	return e.wallTotal, e.lineTotal
}

// Step runs one simulation step: build the spatial index, enumerate
// candidate pairs, resolve collisions in canonical order, advance every
// segment's position, and reflect segments off the world box. It returns
// the wall and line-line collision counts newly accumulated during this
// step (not the running totals — see GetCounters for those).
//
// This mirrors the original driver's per-step sequence: detect
// intersections, update positions, then handle wall collisions.
func (e *Engine) Step() (wallCollisions, lineLineCollisions int) {
	dt := e.opts.TimeStep

	for _, s := range e.segments {
		s.RecomputeSweptAABB(dt, e.opts.Epsilon)
	}

	root := quadindex.Build(e.segments, e.opts.BoxXMin, e.opts.BoxXMax, e.opts.BoxYMin, e.opts.BoxYMax, dt, e.opts.LeafSize, e.opts.ParallelThreshold)
	events := pairenum.Enumerate(root, dt, e.opts.ParallelThreshold)
	ordered := resolve.Order(events)
	resolve.Resolve(ordered)

	for _, s := range e.segments {
		s.Advance(dt)
	}

	newWall := e.reflectWalls()

	lineLineCollisions = len(ordered)
	e.lineTotal += lineLineCollisions
	e.wallTotal += newWall

	cells := 0
	var countCells func(c *quadindex.Cell)
	countCells = func(c *quadindex.Cell) {
		if c == nil {
			return
		}
		cells++
		countCells(c.Q1)
		countCells(c.Q2)
		countCells(c.Q3)
		countCells(c.Q4)
	}
	countCells(root)

	log.Printf("engine: step done segments=%d cells=%d events=%d wall=%d", len(e.segments), cells, lineLineCollisions, newWall)

	return newWall, lineLineCollisions
}

// reflectWalls implements §6's wall-collision pass: for each segment, if an
// endpoint lies outside the world box and the velocity component toward
// that side is outward-positive, flip that component. A segment's counter
// contribution is at most one per step regardless of how many walls it
// violates simultaneously.
func (e *Engine) reflectWalls() int {
	count := 0
	for _, s := range e.segments {
		if e.reflectWallsForSegment(s) {
			count++
		}
	}
	return count
}

func (e *Engine) reflectWallsForSegment(s *segment.Segment) bool {
	p1, p2 := s.Points()
	v := s.Velocity()
	flipX, flipY := false, false

	if (p1.X < e.opts.BoxXMin || p2.X < e.opts.BoxXMin) && v.X < 0 {
		flipX = true
	}
	if (p1.X > e.opts.BoxXMax || p2.X > e.opts.BoxXMax) && v.X > 0 {
		flipX = true
	}
	if (p1.Y < e.opts.BoxYMin || p2.Y < e.opts.BoxYMin) && v.Y < 0 {
		flipY = true
	}
	if (p1.Y > e.opts.BoxYMax || p2.Y > e.opts.BoxYMax) && v.Y > 0 {
		flipY = true
	}

	if !flipX && !flipY {
		return false
	}

	nx, ny := v.X, v.Y
	if flipX {
		nx = -nx
	}
	if flipY {
		ny = -ny
	}
	s.SetVelocity(vec2.New(nx, ny))
	return true
}
