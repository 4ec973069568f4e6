package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/internal/assert"
	"github.com/arloliu/apportion/types"
)

func TestWeights_PositiveVector(t *testing.T) {
	weights := []float64{3, 1, 0, 4}

	res, err := Weights(weights)

	require.NoError(t, err)
	require.InDelta(t, 8.0, res.Sum, 0)
	require.InDelta(t, 4.0, res.MaxAbs, 0)
	require.Equal(t, types.SignNonNegative, res.Profile)
	require.False(t, res.Uniform)
	require.False(t, res.ZeroSum)
	require.Equal(t, []float64{3, 1, 0, 4}, weights, "valid weights are not rewritten")
}

func TestWeights_SignProfiles(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    types.SignProfile
	}{
		{"non-negative", []float64{0, 1, 2}, types.SignNonNegative},
		{"non-positive", []float64{0, -1, -2}, types.SignNonPositive},
		{"mixed", []float64{-1, 3}, types.SignMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Weights(tt.weights)
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Profile)
		})
	}
}

func TestWeights_NaNReplaced(t *testing.T) {
	if assert.Enabled {
		t.Skip("NaN weights panic under the apportiondebug build tag")
	}

	weights := []float64{math.NaN(), 2, math.NaN(), 2}

	res, err := Weights(weights)

	require.NoError(t, err)
	require.Equal(t, 2, res.NaNReplaced)
	require.Equal(t, []float64{0, 2, 0, 2}, weights)
	require.InDelta(t, 4.0, res.Sum, 0)
}

func TestWeights_AllNaNFallsBackToUniform(t *testing.T) {
	if assert.Enabled {
		t.Skip("NaN weights panic under the apportiondebug build tag")
	}

	weights := []float64{math.NaN(), math.NaN(), math.NaN()}

	res, err := Weights(weights)

	require.NoError(t, err)
	require.Equal(t, 3, res.NaNReplaced)
	require.True(t, res.Uniform)
	require.Equal(t, []float64{1, 1, 1}, weights)
	require.InDelta(t, 3.0, res.Sum, 0)
}

func TestWeights_Infinite(t *testing.T) {
	for _, inf := range []float64{math.Inf(1), math.Inf(-1)} {
		weights := []float64{1, inf, 2}

		_, err := Weights(weights)

		require.ErrorIs(t, err, types.ErrNonFiniteWeight)
		require.Contains(t, err.Error(), "weight[1]")
	}
}

func TestWeights_SumOverflow(t *testing.T) {
	weights := []float64{math.MaxFloat64, math.MaxFloat64}

	_, err := Weights(weights)

	require.ErrorIs(t, err, types.ErrNonFiniteWeight)
}

func TestWeights_Empty(t *testing.T) {
	_, err := Weights(nil)

	require.ErrorIs(t, err, types.ErrInvalidShape)
}

func TestWeights_AllZeroUniformFallback(t *testing.T) {
	weights := []float64{0, 0, 0, 0, 0}

	res, err := Weights(weights)

	require.NoError(t, err)
	require.True(t, res.Uniform)
	require.False(t, res.ZeroSum)
	require.InDelta(t, 5.0, res.Sum, 0)
	require.Equal(t, []float64{1, 1, 1, 1, 1}, weights)
}

func TestWeights_NegativeZeroIsZero(t *testing.T) {
	weights := []float64{math.Copysign(0, -1), 0}

	res, err := Weights(weights)

	require.NoError(t, err)
	require.True(t, res.Uniform)
	require.Equal(t, types.SignNonNegative, res.Profile)
}

func TestWeights_MixedZeroSum(t *testing.T) {
	weights := []float64{2, -1, -1}

	res, err := Weights(weights)

	require.NoError(t, err)
	require.True(t, res.ZeroSum)
	require.False(t, res.Uniform)
	require.Equal(t, types.SignMixed, res.Profile)
	require.InDelta(t, 2.0, res.MaxAbs, 0)
	require.Zero(t, res.Sum)
	require.Equal(t, []float64{2, -1, -1}, weights, "mixed zero-sum weights keep their magnitudes")
}

func TestEpsilonDivisor(t *testing.T) {
	eps := 2.1 * math.SmallestNonzeroFloat64

	require.InDelta(t, eps, EpsilonDivisor(0), 0)
	require.InDelta(t, eps, EpsilonDivisor(0.5), 0)
	require.Equal(t, eps*1e6, EpsilonDivisor(1e6))
	require.Positive(t, EpsilonDivisor(0))
}

func BenchmarkWeights(b *testing.B) {
	weights := make([]float64, 1024)
	for i := range weights {
		weights[i] = float64(i%17) + 0.5
	}

	for b.Loop() {
		_, _ = Weights(weights)
	}
}
