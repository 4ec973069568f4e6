package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func TestPrometheusCollector_Distribution(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordDistribution("int64", types.ModeExact, 4, 0.0001, "")
	p.RecordDistribution("int64", types.ModeExact, 4, 0.0002, "")
	p.RecordDistribution("int32", types.ModeApproximate, 3, 0.0001, "invalid_shape")
	p.RecordRemainder(1)

	require.InDelta(t, 2, testutil.ToFloat64(p.distributions.WithLabelValues("int64", "exact", "ok")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.distributions.WithLabelValues("int32", "approximate", "invalid_shape")), 0)

	count, err := testutil.GatherAndCount(reg, "test_distribution_remainder_units")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPrometheusCollector_Normalization(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "")

	p.RecordNaNReplaced(3)
	p.RecordUniformFallback()
	p.RecordZeroSumResolution("epsilon", 0, true)
	p.RecordZeroSumResolution("resample", 256, false)

	require.InDelta(t, 3, testutil.ToFloat64(p.nanReplaced), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.uniformFallbacks), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.zeroSumResolutions.WithLabelValues("epsilon", "success")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.zeroSumResolutions.WithLabelValues("resample", "failure")), 0)

	count, err := testutil.GatherAndCount(reg, "apportion_normalization_nan_replaced_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPrometheusCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "once")

	require.NotPanics(t, func() {
		p.RecordUniformFallback()
		p.RecordUniformFallback()
		p.RecordRemainder(0)
	})
}
