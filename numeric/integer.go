package numeric

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/arloliu/apportion/types"
)

// Integer converts between float64 shares and the signed integer kind T.
//
// The zero value is not usable; obtain one with IntegerOf.
type Integer[T Signed] struct {
	bits int
	lo   float64 // -2^(bits-1), exactly representable
	hi   float64 // 2^(bits-1), first value out of range
}

// IntegerOf returns the adapter for T.
func IntegerOf[T Signed]() Integer[T] {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	return Integer[T]{
		bits: bits,
		lo:   -math.Ldexp(1, bits-1),
		hi:   math.Ldexp(1, bits-1),
	}
}

// Bits returns the width of T in bits.
func (a Integer[T]) Bits() int {
	return a.bits
}

// Name returns the metric and log label of T ("int32" or "int64").
func (a Integer[T]) Name() string {
	return fmt.Sprintf("int%d", a.bits)
}

// Float converts v to float64. Magnitudes above 2^53 lose precision.
func (a Integer[T]) Float(v T) float64 {
	return float64(v)
}

// Trunc converts f to T, truncating toward zero.
//
// Returns types.ErrOverflow when f is NaN or the truncated value is outside
// the range of T.
func (a Integer[T]) Trunc(f float64) (T, error) {
	return a.convert(math.Trunc(f))
}

// Round converts f to T, rounding half away from zero.
//
// Returns types.ErrOverflow when f is NaN or the rounded value is outside the
// range of T.
func (a Integer[T]) Round(f float64) (T, error) {
	return a.convert(math.Round(f))
}

func (a Integer[T]) convert(f float64) (T, error) {
	if math.IsNaN(f) || f < a.lo || f >= a.hi {
		return 0, fmt.Errorf("%v does not fit %s: %w", f, a.Name(), types.ErrOverflow)
	}

	return T(f), nil
}

// Int64 widens v to int64.
func (a Integer[T]) Int64(v T) int64 {
	return int64(v)
}

// FromInt64 narrows v to T, reporting types.ErrOverflow when it does not fit.
func (a Integer[T]) FromInt64(v int64) (T, error) {
	t := T(v)
	if int64(t) != v {
		return 0, fmt.Errorf("%d does not fit %s: %w", v, a.Name(), types.ErrOverflow)
	}

	return t, nil
}

// Add returns x + y, reporting types.ErrOverflow instead of wrapping.
func (a Integer[T]) Add(x, y T) (T, error) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, fmt.Errorf("%d + %d overflows %s: %w", x, y, a.Name(), types.ErrOverflow)
	}

	return s, nil
}

// Sub returns x - y, reporting types.ErrOverflow instead of wrapping.
func (a Integer[T]) Sub(x, y T) (T, error) {
	d := x - y
	if (y > 0 && d > x) || (y < 0 && d < x) {
		return 0, fmt.Errorf("%d - %d overflows %s: %w", x, y, a.Name(), types.ErrOverflow)
	}

	return d, nil
}
