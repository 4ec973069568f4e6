// Package allocate splits a value across slots in proportion to normalized
// weights.
//
// Every function accumulates into the target: target[i] += share[i]. All
// shares and accumulated results are computed and validated before the first
// write, so an error always leaves the target untouched.
//
// Weights must already be normalized (finite, with a nonzero divisor sum); see
// internal/normalize and the strategy package for how the divisor is chosen.
//
// Integral kinds:
//   - Exact floors every share toward zero and hands the remainder out by
//     demand, so the deltas sum to exactly value.
//   - Approximate rounds every share independently; the total may differ from
//     value and is not corrected.
//
// Field kinds (float32, float64, *big.Float, decimal):
//   - ExactField computes shares natively and adds the rounding discrepancy
//     into one randomly chosen slot.
//   - ApproximateField computes shares natively with no correction.
package allocate
