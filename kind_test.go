package apportion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/source"
)

func TestDistributeKind(t *testing.T) {
	d := newTestDistributor(t, TestConfig())

	tests := []struct {
		name    string
		kind    numeric.Kind
		value   string
		weights []float64
		want    []string
	}{
		{"int32", numeric.KindInt32, "10", []float64{3, 1}, []string{"8", "2"}},
		{"int64 negative", numeric.KindInt64, "-10", []float64{3, 1}, []string{"-8", "-2"}},
		{"int uniform", numeric.KindInt, "100", []float64{1, 1, 1, 1}, []string{"25", "25", "25", "25"}},
		{"float32", numeric.KindFloat32, "4", []float64{3, 1}, []string{"3", "1"}},
		{"float64", numeric.KindFloat64, "1", []float64{1, 3}, []string{"0.25", "0.75"}},
		{"bigfloat", numeric.KindBigFloat, "3", []float64{2, 1}, []string{"2", "1"}},
		{"decimal", numeric.KindDecimal, "19.5", []float64{2, 1}, []string{"13", "6.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.DistributeKind(tt.kind, tt.value, tt.weights)

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDistributeKind_DecimalConserves(t *testing.T) {
	d := newTestDistributor(t, TestConfig())

	got, err := d.DistributeKind(numeric.KindDecimal, "100.00", []float64{1, 1, 1})
	require.NoError(t, err)
	require.Len(t, got, 3)

	total := decimal.Zero
	for _, s := range got {
		total = total.Add(decimal.RequireFromString(s))
	}
	require.True(t, total.Equal(decimal.NewFromInt(100)), "total %s", total)
}

func TestDistributeKind_Errors(t *testing.T) {
	d := newTestDistributor(t, TestConfig())

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := d.DistributeKind(numeric.KindInvalid, "1", []float64{1})
		require.ErrorIs(t, err, ErrUnsupportedNumericKind)

		_, err = d.DistributeKind(numeric.Kind(99), "1", []float64{1})
		require.ErrorIs(t, err, ErrUnsupportedNumericKind)
	})

	t.Run("value out of range", func(t *testing.T) {
		_, err := d.DistributeKind(numeric.KindInt32, "3000000000", []float64{1, 1})
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := d.DistributeKind(numeric.KindInt64, "ten", []float64{1, 1})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrOverflow)
		require.Contains(t, err.Error(), "parse value")

		_, err = d.DistributeKind(numeric.KindDecimal, "1.2.3", []float64{1})
		require.Error(t, err)
	})

	t.Run("allocation error", func(t *testing.T) {
		_, err := d.DistributeKind(numeric.KindInt64, "1", nil)
		require.ErrorIs(t, err, ErrInvalidShape)
	})
}

func TestDistributeSampledKind(t *testing.T) {
	t.Run("static source", func(t *testing.T) {
		d := newTestDistributor(t, TestConfig(), WithSource(source.NewStatic([]float64{3, 1})))

		got, err := d.DistributeSampledKind(numeric.KindInt32, "10", 2)

		require.NoError(t, err)
		require.Equal(t, []string{"8", "2"}, got)
	})

	t.Run("no source", func(t *testing.T) {
		d := newTestDistributor(t, TestConfig())

		_, err := d.DistributeSampledKind(numeric.KindInt32, "10", 2)
		require.ErrorIs(t, err, ErrNoWeightSource)
	})

	t.Run("invalid kind checked first", func(t *testing.T) {
		d := newTestDistributor(t, TestConfig())

		_, err := d.DistributeSampledKind(numeric.KindInvalid, "10", 2)
		require.ErrorIs(t, err, ErrUnsupportedNumericKind)
	})
}
