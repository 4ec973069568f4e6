package numeric

import (
	"math"
	"unsafe"
)

// Field is the arithmetic a real or decimal kind exposes to the allocator.
//
// Implementations return fresh values and never mutate their arguments, so
// callers may keep references to earlier results.
type Field[T any] interface {
	// Name returns the metric and log label of the kind.
	Name() string

	// Zero returns the additive identity.
	Zero() T

	// FromFloat converts a finite float64 into T.
	FromFloat(f float64) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T

	// Finite reports whether v is neither infinite nor NaN.
	Finite(v T) bool
}

// Real is the Field adapter for float32 and float64.
type Real[T Float] struct{}

var (
	_ Field[float32] = Real[float32]{}
	_ Field[float64] = Real[float64]{}
)

// Name returns "float32" or "float64".
func (Real[T]) Name() string {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return "float32"
	}

	return "float64"
}

func (Real[T]) Zero() T               { return 0 }
func (Real[T]) FromFloat(f float64) T { return T(f) }
func (Real[T]) Add(a, b T) T          { return a + b }
func (Real[T]) Sub(a, b T) T          { return a - b }
func (Real[T]) Mul(a, b T) T          { return a * b }
func (Real[T]) Quo(a, b T) T          { return a / b }

func (Real[T]) Finite(v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
