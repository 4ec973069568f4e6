package apportion

// Option configures a Distributor with optional dependencies.
//
// Options take precedence over the collaborators New would otherwise build
// from Config.
type Option func(*distributorOptions)

// distributorOptions holds optional Distributor configuration.
type distributorOptions struct {
	logger   Logger
	metrics  MetricsCollector
	rng      Rand
	source   WeightSource
	policies []WeightPolicy
	zeroSum  ZeroSumStrategy
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	d, err := apportion.New(cfg, apportion.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *distributorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	metrics := myPrometheusCollector
//	d, err := apportion.New(cfg, apportion.WithMetrics(metrics))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *distributorOptions) {
		o.metrics = metrics
	}
}

// WithRand sets the random stream owned by the Distributor.
//
// The stream picks the correction slot of exact field allocations and feeds
// a uniform weight source built from Config. It replaces the stream derived
// from Config.Seed.
//
// Parameters:
//   - rng: Random stream; must not be shared with other goroutines unless it is concurrency-safe
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithRand(rng.Seeded(42)))
func WithRand(rng Rand) Option {
	return func(o *distributorOptions) {
		o.rng = rng
	}
}

// WithSource sets the weight source used by sampled operations.
//
// Parameters:
//   - source: WeightSource implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithSource(source.NewNoise(7)))
func WithSource(source WeightSource) Option {
	return func(o *distributorOptions) {
		o.source = source
	}
}

// WithPolicies sets the policy chain applied to sampled weights, replacing
// Config.Policies.
//
// Parameters:
//   - policies: Policies applied left to right
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithPolicies(
//	    policy.Remap{Min: 0, Max: 1},
//	    policy.Bias{Shape: policy.ShapeCenter, Strength: 0.5},
//	))
func WithPolicies(policies ...WeightPolicy) Option {
	return func(o *distributorOptions) {
		o.policies = policies
	}
}

// WithZeroSumStrategy sets the zero-sum strategy, replacing Config.ZeroSum.
//
// Parameters:
//   - strategy: ZeroSumStrategy implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithZeroSumStrategy(strategy.NewResample()))
func WithZeroSumStrategy(strategy ZeroSumStrategy) Option {
	return func(o *distributorOptions) {
		o.zeroSum = strategy
	}
}
