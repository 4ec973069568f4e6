package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion"
	"github.com/arloliu/apportion/internal/logger"
	"github.com/arloliu/apportion/internal/metrics"
	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/test/testutil"
)

const pipelineYAML = `
mode: exact
seed: 2024
zeroSum:
  strategy: resample
  maxAttempts: 32
source:
  kind: noise
  frequency: 0.07
  octaves: 4
  persistence: 0.5
policies:
  - name: remap
    params: {min: 0, max: 1}
  - name: bias
    params: {shape: edges, strength: 0.4}
  - name: power
    params: {exponent: 2}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "apportion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestPipeline_ConfigToAllocation drives the whole pipeline: config file,
// noise source, policy chain, normalization, exact allocation and metrics.
func TestPipeline_ConfigToAllocation(t *testing.T) {
	cfg, err := apportion.LoadConfig(writeConfig(t, pipelineYAML))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	rec := logger.NewRecorder()
	d, err := apportion.New(cfg,
		apportion.WithLogger(rec),
		apportion.WithMetrics(metrics.NewPrometheus(reg, "")),
	)
	require.NoError(t, err)

	const slots = 32
	before := make([]int64, slots)
	target := make([]int64, slots)

	for range 50 {
		require.NoError(t, apportion.DistributeSampled(d, int64(10_000), target))
	}

	testutil.AssertConserved(t, before, target, 500_000)
	testutil.AssertNonNegativeDeltas(t, before, target)

	count, err := promtestutil.GatherAndCount(reg, "apportion_distribution_calls_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, ok := rec.Find("DEBUG", "distributor created")
	require.True(t, ok)
}

// TestPipeline_SeedReproducibility checks that two Distributors built from the
// same file produce identical sampled allocations.
func TestPipeline_SeedReproducibility(t *testing.T) {
	path := writeConfig(t, pipelineYAML)

	run := func() []int32 {
		cfg, err := apportion.LoadConfig(path)
		require.NoError(t, err)

		d, err := apportion.New(cfg)
		require.NoError(t, err)

		target := make([]int32, 16)
		for range 10 {
			require.NoError(t, apportion.DistributeSampled(d, int32(997), target))
		}

		return target
	}

	require.Equal(t, run(), run())
}

// TestPipeline_EnvOverridesSource switches the configured source to a static
// vector through the environment.
func TestPipeline_EnvOverridesSource(t *testing.T) {
	t.Setenv("APPORTION_SOURCE_KIND", "static")
	t.Setenv("APPORTION_SOURCE_WEIGHTS", "3,1")
	t.Setenv("APPORTION_ZERO_SUM_STRATEGY", "epsilon")

	cfg, err := apportion.LoadConfig(writeConfig(t, "mode: exact\n"))
	require.NoError(t, err)

	d, err := apportion.New(cfg)
	require.NoError(t, err)

	shares, err := d.DistributeSampledKind(numeric.KindDecimal, "10.00", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"7.5", "2.5"}, shares)

	total := decimal.RequireFromString(shares[0]).Add(decimal.RequireFromString(shares[1]))
	require.True(t, total.Equal(decimal.NewFromInt(10)))
}

// TestPipeline_KindsAgree allocates the same integral value through every
// integral kind and compares the shares.
func TestPipeline_KindsAgree(t *testing.T) {
	d, err := apportion.New(apportion.TestConfig())
	require.NoError(t, err)

	weights := []float64{0.31, 0.17, 0.29, 0.23}
	var want []string

	for _, kind := range []numeric.Kind{numeric.KindInt32, numeric.KindInt64, numeric.KindInt} {
		w := append([]float64(nil), weights...)
		got, err := d.DistributeKind(kind, "1001", w)
		require.NoError(t, err, kind.String())

		if want == nil {
			want = got
			continue
		}
		require.Equal(t, want, got, kind.String())
	}
}
