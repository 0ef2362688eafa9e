package som

import "gonum.org/v1/gonum/floats"

// SquaredDistance returns the squared Euclidean distance between a and b:
// the sum over components of (a_i − b_i)². It serves both vector-vs-vector
// comparison during the BMU scan and, on 2-element coordinate vectors,
// grid distance.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(D).
func SquaredDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	d := floats.Distance(a, b, 2)

	return d * d, nil
}

// squaredDistanceInto computes the squared Euclidean distance between a
// and b using scratch (len(scratch) == len(a) == len(b), checked by the
// caller). Hot-path variant of SquaredDistance: no allocation, no sqrt.
func squaredDistanceInto(scratch, a, b []float64) float64 {
	copy(scratch, a)
	floats.Sub(scratch, b)

	return floats.Dot(scratch, scratch)
}
