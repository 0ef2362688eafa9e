// Package som trains a Self-Organizing Map: a 2D lattice of reference
// vectors iteratively pulled toward input samples so that nearby lattice
// cells come to represent similar regions of the input space.
//
// # SOM — Kohonen training
//
// For each epoch t and each input sample, in order:
//  1. BMU search:
//     - Scan every cell row-major, compute the squared Euclidean
//     distance between its reference vector and the input.
//     - The global minimum is the best-matching unit (BMU); ties
//     resolve to the first occurrence in scan order.
//  2. Neighborhood:
//     - Compute each cell's squared grid distance from the BMU.
//     - radius(t) = σ₀·exp(−t/λ), λ = N/ln(σ₀); lr(t) = 0.1·exp(−t/N).
//     - Influence θ = exp(−d²/(2·radius²)): 1 at the BMU, decaying
//     toward 0 with grid distance.
//  3. Update:
//     - Nudge every cell by lr·θ·(input − cell), in place.
//
// The loop is strictly sequential across samples: each update observes
// the cumulative effect of all prior updates, including earlier samples
// of the same epoch. This ordering is part of the learning dynamics, not
// an accident. Parallelism is confined to a single BMU scan (Workers
// option), where the reduction preserves the row-major tie-break.
//
// Time complexity: O(N·S·W·H·D)   (N epochs, S samples)
// Memory usage:    O(W·H) per step for the grid-distance matrix
//
// Errors:
//   - ErrNilLattice: trainer constructed over a nil lattice.
//   - ErrBadIterations: non-positive epoch count.
//   - ErrBadTStep: negative t-step hyperparameter.
//   - ErrBadWorkers: negative worker count.
//   - ErrNoSamples: empty training set.
//   - ErrDimensionMismatch: input length differs from the lattice Dim.
//   - ErrSampleOutOfRange: sample component outside the lattice value
//     range (distances across mismatched scales are meaningless).
package som
