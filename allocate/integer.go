package allocate

import (
	"fmt"
	"math"

	"github.com/arloliu/apportion/internal/remainder"
	"github.com/arloliu/apportion/internal/scratch"
	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/types"
)

// Outcome describes an exact integral allocation.
type Outcome struct {
	// Remainder is value minus the sum of the floor shares, before correction.
	Remainder int64

	// Rounds is the number of correction rounds (0 when Remainder is 0).
	Rounds int
}

// Exact allocates value across target with conservation: the deltas added to
// target sum to exactly value.
//
// Each share starts as trunc(value·w/sum). The remainder is then corrected in
// a frame where value and sum are non-negative, so that a positive remainder
// always means "hand out" and demand w/(share+1) keeps its meaning for
// negative values and non-positive weight vectors.
//
// Parameters:
//   - value: Quantity to distribute
//   - target: Accumulation buffer, same length as weights
//   - weights: Normalized weights
//   - sum: Nonzero, finite divisor
//
// Returns:
//   - Outcome: Remainder and correction rounds
//   - error: ErrInvalidShape, ErrNonFiniteWeight for a bad divisor, or
//     ErrOverflow when a share or accumulated value does not fit T
func Exact[T numeric.Signed](value T, target []T, weights []float64, sum float64) (Outcome, error) {
	var out Outcome

	if err := validate(len(target), weights, sum); err != nil {
		return out, err
	}

	a := numeric.IntegerOf[T]()
	n := len(weights)
	v := a.Float(value)

	var shareBuf scratch.Buffer[int64]
	shares := shareBuf.Take(n)

	var total int64
	for i, w := range weights {
		s, err := a.Trunc(v * w / sum)
		if err != nil {
			return out, fmt.Errorf("share[%d]: %w", i, err)
		}

		shares[i] = a.Int64(s)
		if total, err = addInt64(total, shares[i]); err != nil {
			return out, fmt.Errorf("floor total: %w", err)
		}
	}

	r, err := subInt64(a.Int64(value), total)
	if err != nil {
		return out, fmt.Errorf("remainder: %w", err)
	}
	out.Remainder = r

	if r != 0 {
		if out.Rounds, err = correct(shares, weights, value < 0, sum < 0, r); err != nil {
			return out, err
		}
	}

	var resultBuf scratch.Buffer[T]
	results := resultBuf.Take(n)
	for i, share := range shares {
		s, err := a.FromInt64(share)
		if err != nil {
			return out, fmt.Errorf("share[%d]: %w", i, err)
		}

		if results[i], err = a.Add(target[i], s); err != nil {
			return out, fmt.Errorf("target[%d]: %w", i, err)
		}
	}

	copy(target, results)

	return out, nil
}

// Approximate allocates value across target by rounding each share
// round(value·w/sum) independently. The deltas may not sum to value.
//
// Parameters and errors are as for Exact.
func Approximate[T numeric.Signed](value T, target []T, weights []float64, sum float64) error {
	if err := validate(len(target), weights, sum); err != nil {
		return err
	}

	a := numeric.IntegerOf[T]()
	v := a.Float(value)

	var resultBuf scratch.Buffer[T]
	results := resultBuf.Take(len(weights))
	for i, w := range weights {
		s, err := a.Round(v * w / sum)
		if err != nil {
			return fmt.Errorf("share[%d]: %w", i, err)
		}

		if results[i], err = a.Add(target[i], s); err != nil {
			return fmt.Errorf("target[%d]: %w", i, err)
		}
	}

	copy(target, results)

	return nil
}

// correct maps shares into the frame where value and sum are non-negative,
// applies the remainder there and maps the result back.
func correct(shares []int64, weights []float64, negValue, negSum bool, r int64) (int, error) {
	sv := int64(1)
	if negValue {
		sv = -1
	}

	var frameBuf scratch.Buffer[float64]
	frame := frameBuf.Take(len(weights))
	for i, w := range weights {
		if negSum {
			w = -w
		}
		frame[i] = w
	}

	var err error
	for i := range shares {
		if shares[i], err = mulSign(shares[i], sv); err != nil {
			return 0, fmt.Errorf("share[%d]: %w", i, err)
		}
	}

	rf, err := mulSign(r, sv)
	if err != nil {
		return 0, fmt.Errorf("remainder: %w", err)
	}

	res, err := remainder.Correct(shares, frame, rf)
	if err != nil {
		return 0, err
	}

	for i := range shares {
		if shares[i], err = mulSign(shares[i], sv); err != nil {
			return 0, fmt.Errorf("share[%d]: %w", i, err)
		}
	}

	return res.Rounds, nil
}

func validate(targetLen int, weights []float64, sum float64) error {
	if targetLen != len(weights) || targetLen == 0 {
		return fmt.Errorf("target=%d weights=%d: %w", targetLen, len(weights), types.ErrInvalidShape)
	}

	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fmt.Errorf("divisor %v: %w", sum, types.ErrNonFiniteWeight)
	}

	return nil
}

func addInt64(x, y int64) (int64, error) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, types.ErrOverflow
	}

	return s, nil
}

func subInt64(x, y int64) (int64, error) {
	d := x - y
	if (y > 0 && d > x) || (y < 0 && d < x) {
		return 0, types.ErrOverflow
	}

	return d, nil
}

func mulSign(x, sign int64) (int64, error) {
	if sign > 0 {
		return x, nil
	}
	if x == math.MinInt64 {
		return 0, types.ErrOverflow
	}

	return -x, nil
}
