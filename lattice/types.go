// Package lattice defines core types, options, and sentinel errors
// for the lattice subpackage of github.com/antoinehirtz/Math-of-Intelligence.
package lattice

import (
	"errors"
	"math/rand"
)

// Sentinel errors for lattice operations.
var (
	// ErrBadDimensions indicates width, height, or dim ≤ 0 at construction.
	ErrBadDimensions = errors.New("lattice: width, height and dim must be positive")
	// ErrBadValueRange indicates an initialization range with hi ≤ lo.
	ErrBadValueRange = errors.New("lattice: value range upper bound must exceed lower bound")
	// ErrOutOfRange indicates a cell coordinate outside the grid boundaries.
	ErrOutOfRange = errors.New("lattice: cell coordinate out of range")
	// ErrDimensionMismatch indicates a vector whose length differs from the lattice Dim.
	ErrDimensionMismatch = errors.New("lattice: vector dimension mismatch")
)

// Defaults for lattice construction.
const (
	// DefaultRangeLo is the inclusive lower bound of the initialization range.
	DefaultRangeLo = 0.0
	// DefaultRangeHi is the exclusive upper bound of the initialization range.
	// [0, 256) matches the integer range semantics of 8-bit pixel/color data.
	DefaultRangeHi = 256.0
	// defaultSeed is the fixed seed used when callers pass seed==0.
	// Arbitrary but stable, to keep reproducible defaults.
	defaultSeed int64 = 1
)

// Option configures lattice construction.
type Option func(*options)

// options is the gathered construction state. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	lo, hi float64
	rng    *rand.Rand
}

// WithValueRange sets the half-open initialization range [lo, hi).
// Validation happens in New, not here, so errors surface as sentinels.
func WithValueRange(lo, hi float64) Option {
	return func(o *options) {
		o.lo, o.hi = lo, hi
	}
}

// WithRand supplies an explicit random source for cell initialization.
// The source is consumed during New only; the Lattice keeps no reference.
// A nil r is ignored (the seed policy applies instead).
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed derives a deterministic random source from seed.
// Policy: seed==0 ⇒ a fixed default seed; otherwise the seed is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *options) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		o.rng = rand.New(rand.NewSource(s))
	}
}

// defaultOptions returns the construction defaults: range [0, 256),
// deterministic default-seeded RNG.
func defaultOptions() options {
	return options{
		lo:  DefaultRangeLo,
		hi:  DefaultRangeHi,
		rng: rand.New(rand.NewSource(defaultSeed)),
	}
}

// Lattice is a rectangular grid of reference vectors. Width, Height and
// Dim are fixed for the lifetime of the instance; cell contents change
// only through Nudge.
type Lattice struct {
	width, height, dim int
	lo, hi             float64
	// cells holds Width*Height*Dim values, row-major over (x, y):
	// cell (x, y) occupies cells[(y*width+x)*dim : (y*width+x+1)*dim].
	cells []float64
}
