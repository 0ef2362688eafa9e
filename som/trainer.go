package som

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/antoinehirtz/Math-of-Intelligence/lattice"
)

// Trainer orchestrates SOM training over a lattice it exclusively owns
// for the duration of a run. A Trainer is not safe for concurrent use:
// training mutates the lattice in place and reuses internal scratch.
type Trainer struct {
	l       *lattice.Lattice
	opts    Options
	sched   Schedule
	scratch []float64 // Dim-sized buffer reused by Step
}

// New constructs a Trainer over l, validating the full hyperparameter set
// up front so no error can surface mid-training from construction input.
// Returns ErrNilLattice, ErrBadIterations, ErrBadTStep, or ErrBadWorkers.
// Complexity: O(D) memory for scratch.
func New(l *lattice.Lattice, opts Options) (*Trainer, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if opts.NumIterations <= 0 {
		return nil, ErrBadIterations
	}
	if opts.TStep < 0 {
		return nil, ErrBadTStep
	}
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	sched, err := NewSchedule(l.MapRadius(), opts.NumIterations)
	if err != nil {
		return nil, err
	}
	_, _, d := l.Dims()

	return &Trainer{
		l:       l,
		opts:    opts,
		sched:   sched,
		scratch: make([]float64, d),
	}, nil
}

// Lattice returns the lattice being trained.
func (tr *Trainer) Lattice() *lattice.Lattice {
	return tr.l
}

// Schedule returns the decay schedule fixed at construction.
func (tr *Trainer) Schedule() Schedule {
	return tr.sched
}

// Train runs the full loop: for each epoch t in [0, N), for each sample
// in order, apply one update step. t advances once per epoch, so every
// sample within an epoch shares the same radius and learning rate — yet
// later samples observe the lattice as already nudged by earlier samples
// of the same epoch. That progressive visibility is the reference
// behavior and must not be reordered.
//
// All samples are validated (dimensionality and value range) before the
// first mutation, so a bad sample can never leave the lattice partially
// corrupted. Exactly N×len(samples) updates run; there is no convergence
// check. A canceled Ctx or an OnEpoch error stops training at the next
// epoch boundary; the lattice keeps all updates applied so far.
// Complexity: O(N×S×W×H×D).
func (tr *Trainer) Train(samples [][]float64) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	for _, s := range samples {
		if err := tr.validate(s); err != nil {
			return err
		}
	}

	ctx := tr.opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	for t := 0; t < tr.sched.NumIterations(); t++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if tr.opts.OnEpoch != nil {
			radius := tr.sched.NeighborhoodRadius(t)
			lr := tr.sched.LearningRate(t)
			if err := tr.opts.OnEpoch(t, radius, lr); err != nil {
				return err
			}
		}
		for _, s := range samples {
			if err := tr.Step(s, t); err != nil {
				return err
			}
		}
	}

	return nil
}

// Step applies a single update for input at epoch t:
//  1. locate the BMU;
//  2. compute the squared grid distance of every cell from it;
//  3. evaluate radius(t) and lr(t);
//  4. nudge every cell by lr·θ·(input−cell), θ = exp(−d²/(2·radius²)).
//
// Every cell moves, not only the BMU's neighborhood: far cells receive a
// vanishingly small but nonzero nudge under the Gaussian. When 2·radius²
// underflows to zero the influence degenerates to θ=1 at the BMU and 0
// elsewhere rather than dividing by zero.
// Returns ErrDimensionMismatch or ErrSampleOutOfRange on bad input.
// Complexity: O(W×H×D).
func (tr *Trainer) Step(input []float64, t int) error {
	if err := tr.validate(input); err != nil {
		return err
	}
	bx, by := findBMU(tr.l, input, tr.opts.Workers)
	gd, err := GridDistances(tr.l, bx, by)
	if err != nil {
		return err
	}

	radius := tr.sched.NeighborhoodRadius(t)
	lr := tr.sched.LearningRate(t)
	denom := 2 * radius * radius

	w, h, _ := tr.l.Dims()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var theta float64
			switch {
			case denom > 0:
				theta = math.Exp(-gd.At(y, x) / denom)
			case x == bx && y == by:
				theta = 1
			}
			if theta == 0 {
				continue
			}
			cell, _ := tr.l.View(x, y)
			// scratch = lr·θ·(input − cell)
			copy(tr.scratch, input)
			floats.Sub(tr.scratch, cell)
			floats.Scale(lr*theta, tr.scratch)
			if err := tr.l.Nudge(x, y, tr.scratch); err != nil {
				return err
			}
		}
	}

	return nil
}

// validate checks input dimensionality and range compatibility against
// the lattice. The range check is closed on both ends so inputs rescaled
// onto [lo, hi−1] (e.g. 0–255 pixel data) and boundary values both pass.
func (tr *Trainer) validate(input []float64) error {
	_, _, d := tr.l.Dims()
	if len(input) != d {
		return ErrDimensionMismatch
	}
	lo, hi := tr.l.ValueRange()
	for _, v := range input {
		if v < lo || v > hi {
			return ErrSampleOutOfRange
		}
	}

	return nil
}
