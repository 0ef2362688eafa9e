package dataset

import "gonum.org/v1/gonum/floats"

// Rescale maps a normalized sample set onto the closed range [lo, hi]:
// component v becomes lo + v·(hi−lo). Trainers reject samples whose
// scale differs from the lattice seeding range, so normalized data must
// pass through Rescale first (the reference rescales [0,1] pixel data
// onto 0–255 before training).
//
// The input is left untouched; a fresh set is returned.
// Returns ErrBadRange when hi ≤ lo or any input component falls outside
// [0, 1], ErrEmptySamples for an empty set.
// Complexity: O(S×D).
func Rescale(s Samples, lo, hi float64) (Samples, error) {
	if len(s) == 0 {
		return nil, ErrEmptySamples
	}
	if hi <= lo {
		return nil, ErrBadRange
	}
	for _, row := range s {
		for _, v := range row {
			if v < 0 || v > 1 {
				return nil, ErrBadRange
			}
		}
	}

	span := hi - lo
	out := make(Samples, len(s))
	for i, row := range s {
		dst := make([]float64, len(row))
		copy(dst, row)
		floats.Scale(span, dst)
		floats.AddConst(lo, dst)
		out[i] = dst
	}

	return out, nil
}
