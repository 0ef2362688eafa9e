// Package dataset prepares ordered collections of input vectors for SOM
// training.
//
// What:
//
//   - Samples wraps an ordered, non-empty [][]float64 with uniform
//     dimensionality. Order matters: it fixes the BMU-selection order
//     within a training epoch. The set itself is read-only to trainers.
//   - RandomColors generates deterministic uniform RGB triples in
//     [0, 256), matching the lattice's default seeding range.
//   - Rescale maps normalized [0, 1] data onto an arbitrary closed
//     range, so inputs and lattice share a scale and Euclidean
//     distances stay meaningful.
//   - FromCSV decodes flat numeric CSV rows into Samples.
//
// Errors:
//
//   - ErrEmptySamples: no rows.
//   - ErrDimensionMismatch: rows of differing lengths, or a set that
//     fails validation against an expected dimensionality.
//   - ErrBadRange: rescale bounds with hi ≤ lo, or input outside [0, 1].
package dataset
