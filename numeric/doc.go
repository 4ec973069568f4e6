// Package numeric maps the engine's double-precision arithmetic onto concrete
// target kinds.
//
// Two families are supported:
//
//   - Integer[T] for signed fixed-width integers (int32, int64, int). Shares are
//     truncated or rounded from float64 with explicit range checks; conversion
//     never wraps silently and reports types.ErrOverflow instead.
//   - Field[T] for real and decimal kinds (float32, float64, *big.Float,
//     decimal.Decimal). Shares are computed in the kind's own arithmetic.
//
// Kind is a tagged enum over the same closed set, used where the target kind
// is chosen at runtime (configuration, CLI). Unsigned integers and integers
// narrower than 32 bits have no adapter: remainder correction assumes signed
// two's-complement semantics.
package numeric
