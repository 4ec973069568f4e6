package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/apportion/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created lazily on first use and registered exactly once with
// the configured registerer.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	distributions        *prometheus.CounterVec
	distributionDuration *prometheus.HistogramVec
	distributionSlots    prometheus.Histogram
	remainders           prometheus.Histogram
	nanReplaced          prometheus.Counter
	uniformFallbacks     prometheus.Counter
	zeroSumResolutions   *prometheus.CounterVec
	resampleAttempts     prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "apportion" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "apportion"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.distributions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "calls_total",
			Help:      "Total allocation calls by numeric kind, mode and result (ok or error kind).",
		}, []string{"kind", "mode", "result"})

		p.distributionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "duration_seconds",
			Help:      "Duration of allocation calls in seconds by numeric kind and mode.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10), // 100ns .. ~26ms
		}, []string{"kind", "mode"})

		p.distributionSlots = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "slots",
			Help:      "Number of slots per allocation call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		})

		p.remainders = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "remainder_units",
			Help:      "Magnitude of the remainder corrected by exact integral allocation.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 64, 256},
		})

		p.nanReplaced = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "normalization",
			Name:      "nan_replaced_total",
			Help:      "Total NaN weights replaced with zero.",
		})

		p.uniformFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "normalization",
			Name:      "uniform_fallbacks_total",
			Help:      "Total all-zero weight vectors replaced with uniform weights.",
		})

		p.zeroSumResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "normalization",
			Name:      "zero_sum_resolutions_total",
			Help:      "Mixed-sign zero-sum resolutions by strategy and result (success|failure).",
		}, []string{"strategy", "result"})

		p.resampleAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "normalization",
			Name:      "resample_attempts",
			Help:      "Resample attempts used per zero-sum resolution.",
			Buckets:   []float64{0, 1, 2, 4, 16, 64, 256},
		})

		p.reg.MustRegister(p.distributions)
		p.reg.MustRegister(p.distributionDuration)
		p.reg.MustRegister(p.distributionSlots)
		p.reg.MustRegister(p.remainders)
		p.reg.MustRegister(p.nanReplaced)
		p.reg.MustRegister(p.uniformFallbacks)
		p.reg.MustRegister(p.zeroSumResolutions)
		p.reg.MustRegister(p.resampleAttempts)
	})
}

// DistributionMetrics implementation

// RecordDistribution counts the call, and observes duration and slot count.
func (p *PrometheusCollector) RecordDistribution(kind string, mode types.Mode, slots int, duration float64, errKind string) {
	p.ensureRegistered()

	result := "ok"
	if errKind != "" {
		result = errKind
	}

	p.distributions.WithLabelValues(kind, mode.String(), result).Inc()
	p.distributionDuration.WithLabelValues(kind, mode.String()).Observe(duration)
	p.distributionSlots.Observe(float64(slots))
}

// RecordRemainder observes the corrected remainder magnitude.
func (p *PrometheusCollector) RecordRemainder(magnitude int64) {
	p.ensureRegistered()
	p.remainders.Observe(float64(magnitude))
}

// NormalizationMetrics implementation

// RecordNaNReplaced adds count to the NaN replacement counter.
func (p *PrometheusCollector) RecordNaNReplaced(count int) {
	p.ensureRegistered()
	p.nanReplaced.Add(float64(count))
}

// RecordUniformFallback increments the uniform fallback counter.
func (p *PrometheusCollector) RecordUniformFallback() {
	p.ensureRegistered()
	p.uniformFallbacks.Inc()
}

// RecordZeroSumResolution records the outcome and attempt count of a zero-sum resolution.
func (p *PrometheusCollector) RecordZeroSumResolution(strategy string, attempts int, success bool) {
	p.ensureRegistered()
	p.zeroSumResolutions.WithLabelValues(strategy, resultLabel(success)).Inc()
	p.resampleAttempts.Observe(float64(attempts))
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
