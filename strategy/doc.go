// Package strategy provides built-in zero-sum resolution strategies.
//
// A zero-sum strategy decides what to divide by when a mixed-sign weight
// vector cancels to exactly zero. The package includes two built-in
// strategies:
//
//   - Epsilon: Substitutes a tiny nonzero divisor and keeps the weights (default)
//   - Resample: Redraws the weights from the weight source a bounded number of times
//
// # Strategy Selection Guide
//
// Epsilon:
//   - Use when weights are supplied by the caller and cannot be redrawn
//   - Never fails, but the divisor is so small that integral allocations
//     almost always report an overflow; field kinds get very large shares
//   - A compatibility heuristic with no fairness guarantee
//
// Resample:
//   - Use with a stochastic weight source (uniform, noise)
//   - Fails with ErrUnresolvableWeights after MaxAttempts redraws (default: 256)
//   - Fails immediately when the weights cannot be redrawn
//
// The two strategies are not equivalent. A Distributor holds exactly one.
//
// Custom strategies can be implemented by satisfying the types.ZeroSumStrategy interface.
package strategy
