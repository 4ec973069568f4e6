// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/arloliu/apportion/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// DistributionMetrics implementation

// RecordDistribution discards the distribution metric.
func (n *NopMetrics) RecordDistribution(_ /* kind */ string, _ /* mode */ types.Mode, _ /* slots */ int, _ /* duration */ float64, _ /* errKind */ string) {
	// No-op
}

// RecordRemainder discards the remainder metric.
func (n *NopMetrics) RecordRemainder(_ /* magnitude */ int64) {
	// No-op
}

// NormalizationMetrics implementation

// RecordNaNReplaced discards the NaN replacement metric.
func (n *NopMetrics) RecordNaNReplaced(_ /* count */ int) {
	// No-op
}

// RecordUniformFallback discards the uniform fallback metric.
func (n *NopMetrics) RecordUniformFallback() {
	// No-op
}

// RecordZeroSumResolution discards the zero-sum resolution metric.
func (n *NopMetrics) RecordZeroSumResolution(_ /* strategy */ string, _ /* attempts */ int, _ /* success */ bool) {
	// No-op
}
