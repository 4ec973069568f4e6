// Package types provides core type definitions and interfaces for the apportion library.
//
// This package contains shared contracts that are used across multiple packages in the
// library. By keeping these types in a separate package, the root package, the
// allocators, and the pluggable collaborators (sources, policies, strategies) can
// depend on the same definitions without import cycles.
//
// Key types:
//   - Mode: Exact or approximate allocation
//   - SignProfile: Sign composition of a weight vector
//   - WeightSource: Produces raw weight vectors
//   - WeightPolicy: Transforms weight vectors in place
//   - ZeroSumStrategy: Resolves mixed-sign weight vectors that sum to zero
//   - Rand: Explicitly owned random stream
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
