package apportion

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/types"
)

// DistributeKind distributes a textual value across len(weights) fresh slots
// of a kind chosen at runtime, using the configured mode.
//
// The value is parsed in the target kind (base 10 for integers), allocated
// into a zero-initialized target and the shares are returned formatted in the
// same kind. It serves configuration- and CLI-driven callers that do not know
// the numeric kind at compile time.
//
// Parameters:
//   - kind: Target kind (see numeric.ParseKind)
//   - value: Quantity to distribute, e.g. "100", "-2.5", "19.99"
//   - weights: Weights (normalized in place)
//
// Returns:
//   - []string: Formatted shares, index-aligned with weights
//   - error: ErrUnsupportedNumericKind, ErrOverflow when value does not fit
//     kind, or any allocation error
//
// Example:
//
//	shares, err := d.DistributeKind(numeric.KindDecimal, "100.00", []float64{1, 1, 1})
func (d *Distributor) DistributeKind(kind numeric.Kind, value string, weights []float64) ([]string, error) {
	return d.distributeKind(kind, value, weights, nil)
}

// DistributeSampledKind is DistributeKind with n weights drawn from the
// Distributor's source and run through its policy chain.
//
// Returns:
//   - []string: Formatted shares
//   - error: ErrNoWeightSource without a source, otherwise as DistributeKind
func (d *Distributor) DistributeSampledKind(kind numeric.Kind, value string, n int) ([]string, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("kind %s: %w", kind, types.ErrUnsupportedNumericKind)
	}

	weights, resample, err := d.sampled(n)
	if err != nil {
		return nil, err
	}

	return d.distributeKind(kind, value, weights, resample)
}

func (d *Distributor) distributeKind(
	kind numeric.Kind, value string, weights []float64,
	resample func() (types.Normalization, error),
) ([]string, error) {
	switch kind {
	case numeric.KindInt32:
		return intKind[int32](d, value, weights, resample)
	case numeric.KindInt64:
		return intKind[int64](d, value, weights, resample)
	case numeric.KindInt:
		return intKind[int](d, value, weights, resample)
	case numeric.KindFloat32:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, parseError(value, kind.String(), err)
		}

		return fieldKind(d, numeric.Real[float32]{}, float32(v), weights, resample, func(x float32) string {
			return strconv.FormatFloat(float64(x), 'g', -1, 32)
		})
	case numeric.KindFloat64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, parseError(value, kind.String(), err)
		}

		return fieldKind(d, numeric.Real[float64]{}, v, weights, resample, func(x float64) string {
			return strconv.FormatFloat(x, 'g', -1, 64)
		})
	case numeric.KindBigFloat:
		v, _, err := big.ParseFloat(value, 10, d.bigFloat.Prec, big.ToNearestEven)
		if err != nil {
			return nil, parseError(value, kind.String(), err)
		}

		return fieldKind(d, d.bigFloat, v, weights, resample, func(x *big.Float) string {
			return x.Text('g', -1)
		})
	case numeric.KindDecimal:
		v, err := decimal.NewFromString(value)
		if err != nil {
			return nil, parseError(value, kind.String(), err)
		}

		return fieldKind(d, numeric.Decimal{}, v, weights, resample, decimal.Decimal.String)
	default:
		return nil, fmt.Errorf("kind %s: %w", kind, types.ErrUnsupportedNumericKind)
	}
}

func intKind[T numeric.Signed](
	d *Distributor, value string, weights []float64,
	resample func() (types.Normalization, error),
) ([]string, error) {
	a := numeric.IntegerOf[T]()

	v, err := strconv.ParseInt(value, 10, a.Bits())
	if err != nil {
		return nil, parseError(value, a.Name(), err)
	}

	target := make([]T, len(weights))
	if err := distributeInt(d, d.cfg.Mode, T(v), target, weights, resample); err != nil {
		return nil, err
	}

	out := make([]string, len(target))
	for i, t := range target {
		out[i] = strconv.FormatInt(a.Int64(t), 10)
	}

	return out, nil
}

func fieldKind[F any](
	d *Distributor, field numeric.Field[F], value F, weights []float64,
	resample func() (types.Normalization, error), format func(F) string,
) ([]string, error) {
	target := make([]F, len(weights))
	for i := range target {
		target[i] = field.Zero()
	}

	if err := distributeField(d, d.cfg.Mode, field, value, target, weights, resample); err != nil {
		return nil, err
	}

	out := make([]string, len(target))
	for i, t := range target {
		out[i] = format(t)
	}

	return out, nil
}

func parseError(value, kind string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("value %q does not fit %s: %w", value, kind, types.ErrOverflow)
	}

	return fmt.Errorf("parse value %q as %s: %w", value, kind, err)
}
