// Package apportion provides a Go library for splitting a value across slots in
// proportion to weights, with exact conservation for integer targets.
//
// Apportion generalizes largest-averages (D'Hondt) apportionment to signed
// integers of any width, IEEE floats, *big.Float and decimal values, and feeds
// it from pluggable weight sources and policy chains.
//
// # Quick Start
//
// Stateless allocation with default settings:
//
//	import "github.com/arloliu/apportion"
//
//	seats := make([]int, 2)
//	if err := apportion.Exact(10, seats, []float64{3, 1}); err != nil {
//	    log.Fatal(err)
//	}
//	// seats == [8 2]
//
// # Key Features
//
//   - Exact Conservation: integral deltas always sum to the distributed value
//   - Demand-Ranked Remainders: leftover units go to the slots with the highest w/(share+1)
//   - Accumulation: targets are added to, never overwritten, so distributions superimpose
//   - Validate Before Write: any error leaves the target untouched
//   - Numeric Kinds: int32, int64, int, float32, float64, *big.Float, decimal.Decimal
//   - Weight Pipelines: uniform and noise sources, remap/clamp/bias/power policies
//
// # Degenerate Weights
//
// NaN weights are replaced with 0. An infinite weight fails the call with
// ErrNonFiniteWeight. An all-zero vector falls back to uniform weights. A
// mixed-sign vector cancelling to exactly zero is resolved by the
// Distributor's zero-sum strategy: epsilon substitution (default) or bounded
// resampling from the weight source.
//
// # Advanced Usage
//
// Distributor with a seeded noise source and a policy chain:
//
//	import (
//	    "github.com/arloliu/apportion"
//	    "github.com/arloliu/apportion/policy"
//	    "github.com/arloliu/apportion/source"
//	    "github.com/arloliu/apportion/strategy"
//	)
//
//	cfg := apportion.DefaultConfig()
//	cfg.Seed = 42
//
//	d, err := apportion.New(cfg,
//	    apportion.WithSource(source.NewNoise(42, source.WithOctaves(4))),
//	    apportion.WithPolicies(
//	        policy.Remap{Min: 0, Max: 1},
//	        policy.Bias{Shape: policy.ShapeCenter, Strength: 0.5},
//	    ),
//	    apportion.WithZeroSumStrategy(strategy.NewResample()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	budget := make([]int64, 12)
//	err = apportion.DistributeSampled(d, int64(1_000_000), budget)
//
// A Distributor is not safe for concurrent use. See the examples/ directory
// for complete working examples.
package apportion
