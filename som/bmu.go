package som

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/antoinehirtz/Math-of-Intelligence/lattice"
)

// FindBMU scans all W×H cells and returns the grid coordinate whose
// reference vector is closest to input under squared Euclidean distance.
// Ties resolve to the first occurrence in row-major scan order (lowest x
// within lowest y), so results are reproducible even on a freshly seeded
// or constant lattice.
// Returns ErrNilLattice for a nil lattice, ErrDimensionMismatch when
// len(input) differs from the lattice Dim.
// Complexity: O(W×H×D) time, O(D) memory.
func FindBMU(l *lattice.Lattice, input []float64) (x, y int, err error) {
	if l == nil {
		return 0, 0, ErrNilLattice
	}
	if _, _, d := l.Dims(); len(input) != d {
		return 0, 0, ErrDimensionMismatch
	}
	x, y = findBMU(l, input, 1)

	return x, y, nil
}

// findBMU performs the validated BMU scan. workers ≤ 1 scans sequentially;
// otherwise the rows are split into contiguous bands, each band reduced by
// one goroutine, and the band minima merged with the same tie-break as the
// sequential scan (smallest distance first, smallest row-major index on
// equal distance).
func findBMU(l *lattice.Lattice, input []float64, workers int) (x, y int) {
	_, h, _ := l.Dims()
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		idx, _ := scanRows(l, input, 0, h)
		return l.Coordinate(idx)
	}

	type bandMin struct {
		idx  int
		dist float64
	}
	minima := make([]bandMin, workers)
	band := (h + workers - 1) / workers

	var wg sync.WaitGroup
	for wkr := 0; wkr < workers; wkr++ {
		yLo := wkr * band
		yHi := yLo + band
		if yHi > h {
			yHi = h
		}
		wg.Add(1)
		go func(wkr, yLo, yHi int) {
			defer wg.Done()
			idx, dist := scanRows(l, input, yLo, yHi)
			minima[wkr] = bandMin{idx: idx, dist: dist}
		}(wkr, yLo, yHi)
	}
	wg.Wait()

	// Empty trailing bands (idx<0) occur when workers does not divide h.
	best := bandMin{idx: -1}
	for _, m := range minima {
		if m.idx < 0 {
			continue
		}
		if best.idx < 0 || m.dist < best.dist || (m.dist == best.dist && m.idx < best.idx) {
			best = m
		}
	}

	return l.Coordinate(best.idx)
}

// scanRows reduces rows [yLo, yHi) to the row-major index of the closest
// cell and its squared distance. Strict-less comparison keeps the first
// occurrence on ties. Preconditions (bounds, dimensionality) hold by
// construction of the callers.
func scanRows(l *lattice.Lattice, input []float64, yLo, yHi int) (bestIdx int, bestDist float64) {
	w, _, d := l.Dims()
	scratch := make([]float64, d)
	bestIdx = -1
	for y := yLo; y < yHi; y++ {
		for x := 0; x < w; x++ {
			cell, _ := l.View(x, y)
			dist := squaredDistanceInto(scratch, cell, input)
			if bestIdx < 0 || dist < bestDist {
				bestIdx, bestDist = l.Index(x, y), dist
			}
		}
	}

	return bestIdx, bestDist
}

// GridDistances returns the Height×Width matrix of squared grid distances
// from every cell coordinate to the BMU coordinate, both treated as
// 2-component integer vectors: m.At(y, x) = (x−bmuX)² + (y−bmuY)².
// Recomputed fresh on every call; nothing is cached across samples.
// Returns ErrNilLattice for a nil lattice, lattice.ErrOutOfRange when the
// BMU coordinate falls outside the grid.
// Complexity: O(W×H) time and memory.
func GridDistances(l *lattice.Lattice, bmuX, bmuY int) (*mat.Dense, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if !l.InBounds(bmuX, bmuY) {
		return nil, lattice.ErrOutOfRange
	}
	w, h, _ := l.Dims()
	m := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		dy := float64(y - bmuY)
		for x := 0; x < w; x++ {
			dx := float64(x - bmuX)
			m.Set(y, x, dx*dx+dy*dy)
		}
	}

	return m, nil
}
