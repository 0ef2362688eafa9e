// Package lattice implements the rectangular grid of reference vectors
// at the heart of a Self-Organizing Map (SOM).
//
// What:
//
//   - Lattice holds Width×Height cells, each a reference vector of Dim
//     float64 components, stored flat in row-major order over (x, y).
//   - Cells are seeded with independent uniform random values drawn from
//     a configurable half-open range (default [0, 256), matching 8-bit
//     pixel/color data).
//   - Nudge is the sole mutation entry point; View exposes cells for
//     reading without copying.
//
// Why:
//
//   - SOM training mutates every cell on every step; a flat backing
//     slice keeps updates cache-friendly and allocation-free.
//   - Row-major (x, y) layout makes reshaping a trained lattice into a
//     tiled image straightforward for callers.
//
// Determinism:
//
//   - Initialization never touches global random state. Callers pass a
//     seed (or a *rand.Rand); the same seed always reproduces the same
//     initial lattice.
//
// Errors:
//
//   - ErrBadDimensions: width, height, or dim ≤ 0 at construction.
//   - ErrBadValueRange: initialization range with hi ≤ lo.
//   - ErrOutOfRange: cell coordinate outside the grid.
//   - ErrDimensionMismatch: delta vector length differs from Dim.
package lattice
