package numeric

import (
	"math/big"
)

// DefaultBigFloatPrecision is the mantissa precision, in bits, used when a
// BigFloat adapter has no explicit precision.
const DefaultBigFloatPrecision uint = 128

// BigFloat is the Field adapter for arbitrary-precision *big.Float values.
//
// A nil *big.Float argument is treated as zero, so a freshly made
// []*big.Float target can be accumulated into directly.
type BigFloat struct {
	// Prec is the mantissa precision of results. Zero means
	// DefaultBigFloatPrecision.
	Prec uint
}

var _ Field[*big.Float] = BigFloat{}

func (BigFloat) Name() string { return "bigfloat" }

func (b BigFloat) prec() uint {
	if b.Prec == 0 {
		return DefaultBigFloatPrecision
	}

	return b.Prec
}

func (b BigFloat) fresh() *big.Float {
	return new(big.Float).SetPrec(b.prec())
}

func (b BigFloat) or0(v *big.Float) *big.Float {
	if v == nil {
		return b.fresh()
	}

	return v
}

func (b BigFloat) Zero() *big.Float {
	return b.fresh()
}

// FromFloat converts f exactly; f must not be NaN.
func (b BigFloat) FromFloat(f float64) *big.Float {
	return b.fresh().SetFloat64(f)
}

func (b BigFloat) Add(x, y *big.Float) *big.Float {
	return b.fresh().Add(b.or0(x), b.or0(y))
}

func (b BigFloat) Sub(x, y *big.Float) *big.Float {
	return b.fresh().Sub(b.or0(x), b.or0(y))
}

func (b BigFloat) Mul(x, y *big.Float) *big.Float {
	return b.fresh().Mul(b.or0(x), b.or0(y))
}

// Quo returns x / y. The allocator never divides by zero; 0/0 panics with
// big.ErrNaN as documented by math/big.
func (b BigFloat) Quo(x, y *big.Float) *big.Float {
	return b.fresh().Quo(b.or0(x), b.or0(y))
}

func (b BigFloat) Finite(v *big.Float) bool {
	return v == nil || !v.IsInf()
}
