package types

// Normalization is the outcome of scanning and repairing a weight vector.
type Normalization struct {
	// Sum is the divisor used for allocation. It is zero only when ZeroSum is set.
	Sum float64

	// MaxAbs is the largest absolute weight.
	MaxAbs float64

	// Profile is the sign composition of the weights.
	Profile SignProfile

	// NaNReplaced counts NaN weights that were overwritten with 0.
	NaNReplaced int

	// Uniform reports that a same-signed zero-sum vector was replaced by all ones.
	Uniform bool

	// ZeroSum reports a mixed-sign vector whose weights cancel exactly. The
	// weights are left untouched and a ZeroSumStrategy must pick the divisor.
	ZeroSum bool
}

// ZeroSum describes a mixed-sign weight vector that sums to exactly zero.
type ZeroSum struct {
	// Weights is the offending vector. Strategies must not reorder it.
	Weights []float64

	// MaxAbs is the largest absolute weight in Weights.
	MaxAbs float64

	// Resample refills Weights from the weight source and policy chain and
	// normalizes them again. It is nil when the caller supplied the weights.
	Resample func() (Normalization, error)
}

// Resolution is the divisor chosen by a ZeroSumStrategy.
type Resolution struct {
	// Sum is the nonzero divisor to allocate with.
	Sum float64

	// Attempts counts the resample attempts that were made (0 for substitution).
	Attempts int
}

// ZeroSumStrategy resolves mixed-sign weight vectors whose sum is exactly zero.
//
// Built-in strategies live in the strategy package:
//   - Epsilon: substitute a tiny nonzero divisor, keep the weights
//   - Resample: redraw the weights up to a bounded number of attempts
//
// A Distributor holds exactly one strategy; the two are not equivalent and are
// never mixed within one instance.
type ZeroSumStrategy interface {
	// Name returns a short identifier used in logs and metrics.
	Name() string

	// Resolve picks a nonzero divisor for zs.
	//
	// Returns:
	//   - Resolution: The divisor and attempt count
	//   - error: ErrUnresolvableWeights when no divisor can be found
	Resolve(zs ZeroSum) (Resolution, error)
}
