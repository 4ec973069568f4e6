package types

// WeightSource produces raw weight vectors.
//
// Implementations may be deterministic (seeded noise) or stochastic. They must
// produce finite values: NaN is tolerated and zeroed by normalization, an
// infinity fails the whole call.
//
// Sources are not required to be safe for concurrent use. A Distributor never
// calls its source concurrently; callers sharing a source between goroutines
// must serialize access themselves.
type WeightSource interface {
	// Sample fills dst with len(dst) raw weights.
	//
	// Parameters:
	//   - dst: Caller-owned buffer; its length is the number of slots
	//
	// Returns:
	//   - error: Sampling error (e.g., ErrInvalidShape for fixed-length sources)
	Sample(dst []float64) error
}

// WeightPolicy transforms a weight vector in place.
//
// Policies run in caller-specified order between sampling and normalization.
// They may assume finite input and must not introduce infinities.
type WeightPolicy interface {
	// Apply rewrites weights in place.
	Apply(weights []float64)
}

// WeightPolicyFunc adapts an ordinary function to the WeightPolicy interface.
type WeightPolicyFunc func(weights []float64)

// Apply calls f(weights).
func (f WeightPolicyFunc) Apply(weights []float64) {
	f(weights)
}
