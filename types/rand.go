package types

// Rand is an explicitly owned stream of random numbers.
//
// *math/rand/v2.Rand satisfies this interface. Streams are not required to be
// safe for concurrent use; the owner decides how to share them.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// IntN returns a pseudo-random number in [0, n). It panics if n <= 0.
	IntN(n int) int
}
