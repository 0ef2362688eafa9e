package lattice

// New constructs a Lattice of width×height cells, each holding a vector
// of dim independent random values drawn uniformly from the configured
// half-open range (default [0, 256)).
// Returns ErrBadDimensions if width, height, or dim ≤ 0,
// ErrBadValueRange if the configured range has hi ≤ lo.
// Algorithmic complexity: O(W×H×D) time and memory.
func New(width, height, dim int, opts ...Option) (*Lattice, error) {
	if width <= 0 || height <= 0 || dim <= 0 {
		return nil, ErrBadDimensions
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.hi <= o.lo {
		return nil, ErrBadValueRange
	}

	cells := make([]float64, width*height*dim)
	span := o.hi - o.lo
	for i := range cells {
		cells[i] = o.lo + o.rng.Float64()*span
	}

	l := &Lattice{
		width:  width,
		height: height,
		dim:    dim,
		lo:     o.lo,
		hi:     o.hi,
		cells:  cells,
	}

	return l, nil
}

// Dims returns the grid width, grid height, and vector dimensionality.
// Complexity: O(1).
func (l *Lattice) Dims() (width, height, dim int) {
	return l.width, l.height, l.dim
}

// ValueRange returns the half-open [lo, hi) range the cells were seeded from.
// Trainers use it to enforce range compatibility of input samples.
// Complexity: O(1).
func (l *Lattice) ValueRange() (lo, hi float64) {
	return l.lo, l.hi
}

// MapRadius returns max(Width, Height)/2, the initial neighborhood
// radius σ₀ of SOM training. Fixed at construction.
// Complexity: O(1).
func (l *Lattice) MapRadius() float64 {
	m := l.width
	if l.height > m {
		m = l.height
	}
	return float64(m) / 2
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (l *Lattice) Index(x, y int) int {
	return y*l.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (x, y int) {
	return idx % l.width, idx / l.width
}

// View returns the reference vector at (x,y) as a live sub-slice of the
// backing storage. Read-only by contract: mutate cells only through Nudge.
// Returns ErrOutOfRange for coordinates outside the grid.
// Complexity: O(1), no allocation.
func (l *Lattice) View(x, y int) ([]float64, error) {
	if !l.InBounds(x, y) {
		return nil, ErrOutOfRange
	}
	base := l.Index(x, y) * l.dim

	return l.cells[base : base+l.dim : base+l.dim], nil
}

// At copies the reference vector at (x,y) into dst and returns it.
// If dst is nil or too short, a fresh slice is allocated.
// Returns ErrOutOfRange for coordinates outside the grid.
// Complexity: O(D).
func (l *Lattice) At(x, y int, dst []float64) ([]float64, error) {
	v, err := l.View(x, y)
	if err != nil {
		return nil, err
	}
	if len(dst) < l.dim {
		dst = make([]float64, l.dim)
	}
	copy(dst[:l.dim], v)

	return dst[:l.dim], nil
}

// Nudge adds delta component-wise to the reference vector at (x,y).
// This is the sole mutation entry point of a Lattice.
// Returns ErrOutOfRange for coordinates outside the grid,
// ErrDimensionMismatch if len(delta) differs from Dim.
// Complexity: O(D), no allocation.
func (l *Lattice) Nudge(x, y int, delta []float64) error {
	if !l.InBounds(x, y) {
		return ErrOutOfRange
	}
	if len(delta) != l.dim {
		return ErrDimensionMismatch
	}
	base := l.Index(x, y) * l.dim
	cell := l.cells[base : base+l.dim]
	for i, d := range delta {
		cell[i] += d
	}

	return nil
}

// Clone returns a deep copy of the lattice. The copy shares no storage
// with the original; useful for before/after comparisons of a training run.
// Complexity: O(W×H×D).
func (l *Lattice) Clone() *Lattice {
	cells := make([]float64, len(l.cells))
	copy(cells, l.cells)

	return &Lattice{
		width:  l.width,
		height: l.height,
		dim:    l.dim,
		lo:     l.lo,
		hi:     l.hi,
		cells:  cells,
	}
}
