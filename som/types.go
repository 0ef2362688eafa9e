// Package som defines options and sentinel errors for SOM training.
package som

import (
	"context"
	"errors"
)

// Sentinel errors for SOM training. All public entry points return these
// sentinels; callers match them via errors.Is. No user-triggered condition
// panics.
var (
	// ErrNilLattice indicates a trainer constructed over a nil lattice.
	ErrNilLattice = errors.New("som: lattice must be non-nil")
	// ErrBadIterations indicates a non-positive number of training epochs.
	ErrBadIterations = errors.New("som: number of iterations must be positive")
	// ErrBadTStep indicates a negative t-step hyperparameter.
	ErrBadTStep = errors.New("som: t-step must be non-negative")
	// ErrBadWorkers indicates a negative BMU-scan worker count.
	ErrBadWorkers = errors.New("som: workers must be non-negative")
	// ErrNoSamples indicates an empty training set.
	ErrNoSamples = errors.New("som: sample set must be non-empty")
	// ErrDimensionMismatch indicates an input vector whose length differs
	// from the lattice dimensionality.
	ErrDimensionMismatch = errors.New("som: input vector dimension mismatch")
	// ErrSampleOutOfRange indicates a sample component outside the lattice
	// value range. Rescale inputs into the lattice range first; Euclidean
	// distances across mismatched scales are meaningless.
	ErrSampleOutOfRange = errors.New("som: sample component outside lattice value range")
)

// BaseLearningRate is the initial learning rate η₀ of the decay schedule.
// The reference training run uses 0.1.
const BaseLearningRate = 0.1

// DefaultNumIterations is the default epoch count N.
const DefaultNumIterations = 100

// Options configures a Trainer.
type Options struct {
	// Ctx allows epoch-boundary cancellation; if nil, context.Background()
	// is used. A canceled context stops training between epochs; the
	// partially trained lattice remains valid.
	Ctx context.Context

	// NumIterations is the epoch count N. Each epoch applies one update
	// per sample; the iteration counter t advances once per epoch.
	NumIterations int

	// TStep is retained for interface compatibility with the reference
	// hyperparameter set. It has no effect on the algorithm.
	TStep float64

	// Workers splits a single BMU scan across this many goroutines.
	// 0 or 1 means a sequential scan. Sample updates themselves are
	// never parallelized; see the package documentation.
	Workers int

	// OnEpoch(t, radius, lr) is called at the start of each epoch with
	// that epoch's decayed values. If it returns an error, training
	// aborts and the error is surfaced to the caller.
	OnEpoch func(t int, radius, lr float64) error
}

// DefaultOptions returns the training defaults: N=100 epochs, sequential
// BMU scan, no hooks, background context.
func DefaultOptions() Options {
	return Options{
		NumIterations: DefaultNumIterations,
		Workers:       1,
	}
}
