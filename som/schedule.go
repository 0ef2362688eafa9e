package som

import "math"

// Schedule holds the fixed hyperparameters of the two exponential decay
// curves driving SOM training. It is a pure value: both accessors are
// deterministic functions of the epoch index with no internal state.
type Schedule struct {
	sigma0 float64 // initial neighborhood radius σ₀ = MapRadius
	lambda float64 // time constant λ
	n      float64 // epoch count N
}

// NewSchedule derives the decay schedule from the lattice map radius σ₀
// and the epoch count N. The time constant is λ = N/ln(σ₀).
//
// Degenerate grids (σ₀ ≤ 1, i.e. max(W,H) ≤ 2) would make ln(σ₀) ≤ 0;
// for those λ is clamped to N so the radius still decays smoothly from
// σ₀. NeighborhoodRadius(0) equals σ₀ in every case.
//
// Returns ErrBadIterations if numIterations ≤ 0.
func NewSchedule(mapRadius float64, numIterations int) (Schedule, error) {
	if numIterations <= 0 {
		return Schedule{}, ErrBadIterations
	}
	n := float64(numIterations)
	lambda := n
	if mapRadius > 1 {
		lambda = n / math.Log(mapRadius)
	}

	return Schedule{sigma0: mapRadius, lambda: lambda, n: n}, nil
}

// InitialRadius returns σ₀, the neighborhood radius at t=0.
// Complexity: O(1).
func (s Schedule) InitialRadius() float64 {
	return s.sigma0
}

// NumIterations returns the epoch count N.
// Complexity: O(1).
func (s Schedule) NumIterations() int {
	return int(s.n)
}

// NeighborhoodRadius returns σ₀·exp(−t/λ): monotonically decreasing from
// σ₀ toward 0, strictly positive for every finite t.
// Complexity: O(1).
func (s Schedule) NeighborhoodRadius(t int) float64 {
	return s.sigma0 * math.Exp(-float64(t)/s.lambda)
}

// LearningRate returns η₀·exp(−t/N): monotonically decreasing from
// BaseLearningRate toward 0, never reaching it for finite t.
// Complexity: O(1).
func (s Schedule) LearningRate(t int) float64 {
	return BaseLearningRate * math.Exp(-float64(t)/s.n)
}
