package dataset

import "errors"

// Sentinel errors for dataset operations.
var (
	// ErrEmptySamples indicates a sample set with no rows.
	ErrEmptySamples = errors.New("dataset: sample set must be non-empty")
	// ErrDimensionMismatch indicates rows of differing lengths, or a set
	// whose dimensionality differs from an expected value.
	ErrDimensionMismatch = errors.New("dataset: vector dimension mismatch")
	// ErrBadRange indicates rescale bounds with hi ≤ lo, or a normalized
	// input component outside [0, 1].
	ErrBadRange = errors.New("dataset: value outside expected range")
)

// Samples is an ordered collection of equal-length input vectors.
// It is assignable where trainers expect [][]float64.
type Samples [][]float64

// New validates vecs and wraps it as Samples without copying: the caller
// must not mutate vecs afterwards.
// Returns ErrEmptySamples for an empty set, ErrDimensionMismatch when
// rows differ in length or any row is empty.
// Complexity: O(S).
func New(vecs [][]float64) (Samples, error) {
	if len(vecs) == 0 {
		return nil, ErrEmptySamples
	}
	dim := len(vecs[0])
	if dim == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, v := range vecs {
		if len(v) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	return Samples(vecs), nil
}

// Dim returns the shared vector length, or 0 for an empty set.
// Complexity: O(1).
func (s Samples) Dim() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Validate checks the set is non-empty and every row has length dim.
// Complexity: O(S).
func (s Samples) Validate(dim int) error {
	if len(s) == 0 {
		return ErrEmptySamples
	}
	for _, v := range s {
		if len(v) != dim {
			return ErrDimensionMismatch
		}
	}

	return nil
}
