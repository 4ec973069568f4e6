// Package normalize validates raw weight vectors and computes the divisor used
// for allocation.
package normalize

import (
	"fmt"
	"math"

	"github.com/arloliu/apportion/internal/assert"
	"github.com/arloliu/apportion/types"
)

// epsilonFactor scales the smallest positive double for the zero-sum substitute.
const epsilonFactor = 2.1

// Weights scans weights once and repairs them in place.
//
// The scan computes the running sum, the largest absolute weight and the sign
// profile. NaN entries are replaced with 0; an infinite entry aborts the scan.
// When the sum is exactly zero:
//   - a vector that is not mixed-sign (in practice, all zeros) is overwritten
//     with 1.0 everywhere and the sum becomes len(weights)
//   - a mixed-sign vector is left untouched and reported with ZeroSum set, so a
//     ZeroSumStrategy can choose the divisor
//
// Parameters:
//   - weights: Weight vector, mutated in place
//
// Returns:
//   - types.Normalization: Divisor and scan diagnostics
//   - error: ErrInvalidShape for an empty vector, ErrNonFiniteWeight for an
//     infinite weight or a sum that overflows float64
func Weights(weights []float64) (types.Normalization, error) {
	var res types.Normalization

	if len(weights) == 0 {
		return res, fmt.Errorf("empty weight vector: %w", types.ErrInvalidShape)
	}

	var hasPos, hasNeg bool
	sum := 0.0
	maxAbs := 0.0

	for i, w := range weights {
		switch {
		case math.IsNaN(w):
			assert.That(false, "weight[%d] is NaN", i)
			weights[i] = 0
			res.NaNReplaced++

			continue
		case math.IsInf(w, 0):
			return types.Normalization{}, fmt.Errorf("weight[%d] = %v: %w", i, w, types.ErrNonFiniteWeight)
		case w > 0:
			hasPos = true
		case w < 0:
			hasNeg = true
		}

		sum += w
		if a := math.Abs(w); a > maxAbs {
			maxAbs = a
		}
	}

	if math.IsInf(sum, 0) {
		return types.Normalization{}, fmt.Errorf("weight sum overflows float64: %w", types.ErrNonFiniteWeight)
	}

	res.MaxAbs = maxAbs
	res.Profile = profile(hasPos, hasNeg)
	res.Sum = sum

	if sum != 0 {
		return res, nil
	}

	if res.Profile != types.SignMixed {
		for i := range weights {
			weights[i] = 1.0
		}
		res.Sum = float64(len(weights))
		res.MaxAbs = 1.0
		res.Uniform = true

		return res, nil
	}

	res.ZeroSum = true

	return res, nil
}

// EpsilonDivisor returns the substitute divisor for a mixed-sign vector whose
// weights cancel exactly: max(2.1·ε, 2.1·ε·maxAbs), ε being the smallest
// positive double. The result is never zero.
//
// This is a compatibility heuristic with no fairness guarantee; integral
// allocations with it usually overflow and report ErrOverflow.
func EpsilonDivisor(maxAbs float64) float64 {
	eps := epsilonFactor * math.SmallestNonzeroFloat64

	return math.Max(eps, eps*maxAbs)
}

func profile(hasPos, hasNeg bool) types.SignProfile {
	switch {
	case hasPos && hasNeg:
		return types.SignMixed
	case hasNeg:
		return types.SignNonPositive
	default:
		return types.SignNonNegative
	}
}
