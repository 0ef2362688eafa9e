package dataset

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
// Mirrors the lattice seeding policy: reproducible by default.
const defaultSeed int64 = 1

// RandomColors generates n RGB triples with integer-valued components
// drawn uniformly from [0, 256), the range the reference training run
// feeds the map. Deterministic: the same seed always yields the same
// ordered set. Policy: seed==0 ⇒ fixed default seed.
// Returns ErrEmptySamples when n ≤ 0.
// Complexity: O(n).
func RandomColors(n int, seed int64) (Samples, error) {
	if n <= 0 {
		return nil, ErrEmptySamples
	}
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	rng := rand.New(rand.NewSource(s))

	out := make(Samples, n)
	for i := range out {
		out[i] = []float64{
			float64(rng.Intn(256)),
			float64(rng.Intn(256)),
			float64(rng.Intn(256)),
		}
	}

	return out, nil
}
