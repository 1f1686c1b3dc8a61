// Package options provides configurable settings for the collision engine,
// following the functional-options pattern used throughout the teacher
// library's own options package: a struct of defaults, a function type that
// mutates it, and an Apply helper that folds a variadic slice of those
// functions over the defaults.
//
// # Functional Options
//
//   - WithEpsilon sets the floating-point tolerance used by the swept-AABB
//     pad. The classifier's near-zero fallback reads vec2.Epsilon instead.
//   - WithLeafSize sets N_LEAF, the segment-count threshold at or below which
//     a cell stops subdividing.
//   - WithParallelThreshold sets PAR_MIN, the subtree size below which
//     recursion runs sequentially instead of forking.
//   - WithWorldBox sets the axis-aligned box segments are confined to.
//   - WithTimeStep sets Δt.
package options

// EngineOptionFunc is a functional option that mutates an EngineOptions
// struct in place.
type EngineOptionFunc func(*EngineOptions)

// EngineOptions holds the tunable parameters of the collision engine.
type EngineOptions struct {
	// Epsilon is the floating-point tolerance used to pad swept AABBs. It is
	// not passed to vec2, whose own epsilon governs near-zero determinants.
	Epsilon float64

	// LeafSize is N_LEAF: a cell that receives at most this many segments
	// stops subdividing and keeps them all as its straddler list.
	LeafSize int

	// ParallelThreshold is PAR_MIN: a cell whose subtree holds more than this
	// many segments forks its child recursion instead of running it inline.
	ParallelThreshold int

	// BoxXMin, BoxXMax, BoxYMin, BoxYMax define the world box segments are
	// confined to.
	BoxXMin, BoxXMax, BoxYMin, BoxYMax float64

	// TimeStep is Δt, the duration simulated by one engine_step call.
	TimeStep float64
}

// Default returns the recommended defaults: the unit square world box,
// Δt = 0.5, N_LEAF = 48 and PAR_MIN = 960 (20x N_LEAF), matching the ranges
// spec.md recommends.
func Default() EngineOptions {
	return EngineOptions{
		Epsilon:           1e-9,
		LeafSize:          48,
		ParallelThreshold: 960,
		BoxXMin:           0,
		BoxXMax:           1,
		BoxYMin:           0,
		BoxYMax:           1,
		TimeStep:          0.5,
	}
}

// Apply folds opts over defaults in order, returning the resulting options.
func Apply(defaults EngineOptions, opts ...EngineOptionFunc) EngineOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// WithEpsilon sets the floating-point tolerance. Negative values are
// clamped to zero, disabling the adjustment.
func WithEpsilon(epsilon float64) EngineOptionFunc {
	return func(o *EngineOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		o.Epsilon = epsilon
	}
}

// WithLeafSize sets N_LEAF. Values less than 1 are ignored.
func WithLeafSize(n int) EngineOptionFunc {
	return func(o *EngineOptions) {
		if n < 1 {
			return
		}
		o.LeafSize = n
	}
}

// WithParallelThreshold sets PAR_MIN. Values less than 1 are ignored.
func WithParallelThreshold(n int) EngineOptionFunc {
	return func(o *EngineOptions) {
		if n < 1 {
			return
		}
		o.ParallelThreshold = n
	}
}

// WithWorldBox sets the world box. The caller is responsible for supplying
// xmin < xmax and ymin < ymax; the engine validates this at construction.
func WithWorldBox(xmin, xmax, ymin, ymax float64) EngineOptionFunc {
	return func(o *EngineOptions) {
		o.BoxXMin, o.BoxXMax, o.BoxYMin, o.BoxYMax = xmin, xmax, ymin, ymax
	}
}

// WithTimeStep sets Δt. Non-positive values are ignored.
func WithTimeStep(dt float64) EngineOptionFunc {
	return func(o *EngineOptions) {
		if dt <= 0 {
			return
		}
		o.TimeStep = dt
	}
}
