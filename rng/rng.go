// Package rng constructs the explicitly owned random streams used by a
// Distributor and by stochastic weight sources.
//
// Seeded streams are reproducible and must not be shared between goroutines
// without external synchronization. The entropy stream draws from
// lukechampine.com/frand and is safe for concurrent use, at the cost of
// reproducibility.
package rng

import (
	"math/rand/v2"

	"lukechampine.com/frand"

	"github.com/arloliu/apportion/types"
)

// streamSalt decorrelates the two PCG state words derived from one seed.
const streamSalt = 0x9e3779b97f4a7c15

// Seeded returns a reproducible PCG stream.
//
// The same seed always yields the same sequence on every platform.
//
// Parameters:
//   - seed: Stream seed
//
// Returns:
//   - types.Rand: Stream not safe for concurrent use
func Seeded(seed uint64) types.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt)) //nolint:gosec
}

// Entropy returns a stream backed by the frand CSPRNG.
//
// Returns:
//   - types.Rand: Stream safe for concurrent use
func Entropy() types.Rand {
	return entropy{}
}

// New returns Seeded(seed) for a nonzero seed and Entropy() otherwise.
func New(seed uint64) types.Rand {
	if seed == 0 {
		return Entropy()
	}

	return Seeded(seed)
}

type entropy struct{}

func (entropy) Float64() float64 { return frand.Float64() }
func (entropy) IntN(n int) int   { return frand.Intn(n) }
