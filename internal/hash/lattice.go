// Package hash provides deterministic hashing of integer lattice points for
// coherent noise.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Lattice hashes the lattice point i under seed using XXH3.
//
// The same (seed, i) pair always yields the same value, which is what makes
// noise sampled from the lattice coherent and reproducible.
//
// Parameters:
//   - seed: Stream seed (0 hashes without a seed)
//   - i: Lattice coordinate
//
// Returns:
//   - uint64: 64-bit hash of the point
func Lattice(seed uint64, i int64) uint64 {
	var ib [8]byte
	binary.LittleEndian.PutUint64(ib[:], uint64(i)) //nolint:gosec

	if seed != 0 {
		return xxh3.HashSeed(ib[:], seed)
	}

	return xxh3.Hash(ib[:])
}

// Derive folds label into seed, producing an independent seed per layer.
//
// Example:
//
//	octaveSeed := hash.Derive(seed, "octave-2")
func Derive(seed uint64, label string) uint64 {
	if seed != 0 {
		return xxh3.HashStringSeed(label, seed)
	}

	return xxh3.HashString(label)
}

// Signed maps a hash uniformly onto [-1, 1).
//
// The top 53 bits are used so every result is exactly representable.
func Signed(h uint64) float64 {
	return float64(h>>11)/(1<<53)*2 - 1
}
