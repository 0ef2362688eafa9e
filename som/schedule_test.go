package som_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoinehirtz/Math-of-Intelligence/som"
)

// TestNewSchedule_BadIterations verifies construction fails fast on N ≤ 0.
func TestNewSchedule_BadIterations(t *testing.T) {
	_, err := som.NewSchedule(5, 0)
	assert.ErrorIs(t, err, som.ErrBadIterations)
	_, err = som.NewSchedule(5, -3)
	assert.ErrorIs(t, err, som.ErrBadIterations)
}

// TestSchedule_RadiusProperties checks the radius decay curve:
// radius(0) == σ₀, strictly decreasing, strictly positive.
func TestSchedule_RadiusProperties(t *testing.T) {
	const n = 100
	s, err := som.NewSchedule(5, n)
	require.NoError(t, err)

	assert.Equal(t, 5.0, s.NeighborhoodRadius(0), "radius(0) must equal σ₀")
	assert.Equal(t, 5.0, s.InitialRadius())
	assert.Equal(t, n, s.NumIterations())

	prev := s.NeighborhoodRadius(0)
	for i := 1; i < n; i++ {
		r := s.NeighborhoodRadius(i)
		assert.Less(t, r, prev, "radius must strictly decrease at t=%d", i)
		assert.Greater(t, r, 0.0, "radius must stay positive at t=%d", i)
		prev = r
	}
}

// TestSchedule_LearningRateProperties checks the learning-rate curve:
// lr(0) == 0.1, strictly decreasing, never reaching 0 for finite t.
func TestSchedule_LearningRateProperties(t *testing.T) {
	const n = 100
	s, err := som.NewSchedule(5, n)
	require.NoError(t, err)

	assert.Equal(t, som.BaseLearningRate, s.LearningRate(0), "lr(0) must equal η₀")

	prev := s.LearningRate(0)
	for i := 1; i < 3*n; i++ {
		lr := s.LearningRate(i)
		assert.Less(t, lr, prev, "lr must strictly decrease at t=%d", i)
		assert.Greater(t, lr, 0.0, "lr must stay positive at t=%d", i)
		prev = lr
	}
}

// TestSchedule_DegenerateRadius covers σ₀ ≤ 1 (grids with max(W,H) ≤ 2):
// λ is clamped so the curve stays finite, and radius(0) still equals σ₀.
func TestSchedule_DegenerateRadius(t *testing.T) {
	s, err := som.NewSchedule(0.5, 50)
	require.NoError(t, err)

	assert.Equal(t, 0.5, s.NeighborhoodRadius(0))
	assert.Greater(t, s.NeighborhoodRadius(49), 0.0)
	assert.Less(t, s.NeighborhoodRadius(49), 0.5)
}
