package types

// MetricsCollector defines methods for recording engine metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine itself is single-threaded, but one collector is commonly shared by
// many Distributors, so implementations must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	DistributionMetrics
	NormalizationMetrics
}

// DistributionMetrics defines metrics for allocation calls.
type DistributionMetrics interface {
	// RecordDistribution records one completed or failed allocation call.
	//
	// Parameters:
	//   - kind: Numeric kind label ("int64", "float64", "decimal", ...)
	//   - mode: Allocation mode
	//   - slots: Number of slots
	//   - duration: Time taken in seconds
	//   - errKind: ErrorKind of the failure, "" on success
	RecordDistribution(kind string, mode Mode, slots int, duration float64, errKind string)

	// RecordRemainder records the magnitude of the remainder corrected by an exact
	// integral allocation.
	//
	// Parameters:
	//   - magnitude: |remainder|, 0 when truncation already conserved the value
	RecordRemainder(magnitude int64)
}

// NormalizationMetrics defines metrics for weight normalization.
type NormalizationMetrics interface {
	// RecordNaNReplaced records NaN weights that were zeroed.
	RecordNaNReplaced(count int)

	// RecordUniformFallback records an all-zero weight vector replaced by ones.
	RecordUniformFallback()

	// RecordZeroSumResolution records a mixed-sign zero-sum resolution.
	//
	// Parameters:
	//   - strategy: ZeroSumStrategy name
	//   - attempts: Resample attempts used
	//   - success: true if a divisor was found
	RecordZeroSumResolution(strategy string, attempts int, success bool)
}
