package allocate

import (
	"fmt"

	"github.com/arloliu/apportion/internal/scratch"
	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/types"
)

// ExactField allocates value across target in the field's own arithmetic and
// then adds the rounding discrepancy value - Σshare into one slot picked
// uniformly at random with rng. A nil rng picks slot 0.
//
// Exactly one rng draw is consumed per successful call.
//
// Parameters:
//   - f: Field adapter for T
//   - value: Quantity to distribute
//   - target: Accumulation buffer, same length as weights
//   - weights: Normalized weights
//   - sum: Nonzero, finite divisor
//   - rng: Random source for the correction slot
//
// Returns:
//   - error: ErrInvalidShape, ErrNonFiniteWeight for a bad divisor, or
//     ErrOverflow when value, a share or an accumulated value is not finite
func ExactField[T any](f numeric.Field[T], value T, target []T, weights []float64, sum float64, rng types.Rand) error {
	shares, err := fieldShares(f, value, target, weights, sum)
	if err != nil {
		return err
	}

	distributed := f.Zero()
	for _, s := range shares {
		distributed = f.Add(distributed, s)
	}

	diff := f.Sub(value, distributed)
	if !f.Finite(diff) {
		return fmt.Errorf("correction: %w", types.ErrOverflow)
	}

	j := 0
	if rng != nil {
		j = rng.IntN(len(shares))
	}
	shares[j] = f.Add(shares[j], diff)

	return accumulate(f, target, shares)
}

// ApproximateField allocates value across target in the field's own
// arithmetic without a correction step.
//
// Parameters and errors are as for ExactField.
func ApproximateField[T any](f numeric.Field[T], value T, target []T, weights []float64, sum float64) error {
	shares, err := fieldShares(f, value, target, weights, sum)
	if err != nil {
		return err
	}

	return accumulate(f, target, shares)
}

func fieldShares[T any](f numeric.Field[T], value T, target []T, weights []float64, sum float64) ([]T, error) {
	if err := validate(len(target), weights, sum); err != nil {
		return nil, err
	}

	if !f.Finite(value) {
		return nil, fmt.Errorf("value: %w", types.ErrOverflow)
	}

	divisor := f.FromFloat(sum)
	shares := make([]T, len(weights))
	for i, w := range weights {
		s := f.Quo(f.Mul(value, f.FromFloat(w)), divisor)
		if !f.Finite(s) {
			return nil, fmt.Errorf("share[%d] of %s: %w", i, f.Name(), types.ErrOverflow)
		}
		shares[i] = s
	}

	return shares, nil
}

func accumulate[T any](f numeric.Field[T], target, shares []T) error {
	var resultBuf scratch.Buffer[T]
	results := resultBuf.Take(len(shares))
	for i, s := range shares {
		results[i] = f.Add(target[i], s)
		if !f.Finite(results[i]) {
			return fmt.Errorf("target[%d] of %s: %w", i, f.Name(), types.ErrOverflow)
		}
	}

	copy(target, results)

	return nil
}
