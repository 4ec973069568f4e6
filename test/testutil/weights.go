package testutil

import (
	"math/rand/v2"
)

// RandomWeights returns n weights drawn uniformly from [lo, hi) using a PCG
// stream seeded with seed, so failures reproduce from the seed alone.
func RandomWeights(seed uint64, n int, lo, hi float64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
	w := make([]float64, n)
	for i := range w {
		w[i] = lo + r.Float64()*(hi-lo)
	}

	return w
}
