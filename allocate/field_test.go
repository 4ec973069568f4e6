package allocate

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/test/testutil"
	"github.com/arloliu/apportion/types"
)

// fixedRand always picks the same slot and counts draws.
type fixedRand struct {
	slot  int
	draws int
}

var _ types.Rand = (*fixedRand)(nil)

func (r *fixedRand) Float64() float64 { return 0 }

func (r *fixedRand) IntN(n int) int {
	r.draws++

	return r.slot % n
}

func TestExactField_Float64(t *testing.T) {
	target := []float64{1, 2, 3, 4}
	before := append([]float64(nil), target...)
	rng := &fixedRand{slot: 1}

	err := ExactField[float64](numeric.Real[float64]{}, 0.7, target, []float64{0.1, 0.2, 0.3, 0.4}, 1.0, rng)

	require.NoError(t, err)
	require.Equal(t, 1, rng.draws)
	testutil.AssertFloatConserved(t, before, target, 0.7, 1e-12)
	require.InDelta(t, 1.07, target[0], 1e-12)
}

func TestExactField_Decimal(t *testing.T) {
	d := numeric.Decimal{}
	target := []decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero}
	rng := &fixedRand{slot: 2}

	err := ExactField(d, decimal.NewFromInt(100), target, []float64{1, 1, 1}, 3, rng)

	require.NoError(t, err)

	total := decimal.Zero
	for _, v := range target {
		total = total.Add(v)
	}
	require.True(t, total.Equal(decimal.NewFromInt(100)), "total %s", total)
	require.True(t, target[0].Equal(target[1]))
	require.True(t, target[2].GreaterThan(target[0]), "the drawn slot absorbs the discrepancy")
}

func TestExactField_BigFloat(t *testing.T) {
	b := numeric.BigFloat{Prec: 200}
	target := make([]*big.Float, 3)

	err := ExactField[*big.Float](b, big.NewFloat(10), target, []float64{1, 2, 3}, 6, &fixedRand{})

	require.NoError(t, err)

	total := b.Zero()
	for _, v := range target {
		require.NotNil(t, v)
		total = b.Add(total, v)
	}
	got, _ := total.Float64()
	require.InDelta(t, 10.0, got, 1e-30)
}

func TestExactField_NilRandPicksFirstSlot(t *testing.T) {
	d := numeric.Decimal{}
	target := make([]decimal.Decimal, 3)

	err := ExactField(d, decimal.NewFromInt(1), target, []float64{1, 1, 1}, 3, nil)

	require.NoError(t, err)
	require.True(t, target[0].GreaterThan(target[1]))
}

func TestExactField_ValidatesBeforeWriting(t *testing.T) {
	f := numeric.Real[float64]{}

	t.Run("shape", func(t *testing.T) {
		target := []float64{1, 2}
		err := ExactField[float64](f, 1, target, []float64{1}, 1, nil)
		require.ErrorIs(t, err, types.ErrInvalidShape)
		require.Equal(t, []float64{1, 2}, target)
	})

	t.Run("non-finite value", func(t *testing.T) {
		target := []float64{1, 2}
		err := ExactField[float64](f, math.Inf(1), target, []float64{1, 1}, 2, nil)
		require.ErrorIs(t, err, types.ErrOverflow)
		require.Equal(t, []float64{1, 2}, target)
	})

	t.Run("accumulation overflow", func(t *testing.T) {
		target := []float64{math.MaxFloat64, 0}
		err := ExactField[float64](f, 1e308, target, []float64{1, 1}, 2, &fixedRand{slot: 1})
		require.ErrorIs(t, err, types.ErrOverflow)
		require.Equal(t, []float64{math.MaxFloat64, 0}, target)
	})

	t.Run("float32 epsilon divisor", func(t *testing.T) {
		target := make([]float32, 2)
		err := ExactField[float32](numeric.Real[float32]{}, 1, target, []float64{1, -1}, 2.1*math.SmallestNonzeroFloat64, nil)
		require.ErrorIs(t, err, types.ErrOverflow)
		require.Equal(t, []float32{0, 0}, target)
	})
}

func TestApproximateField(t *testing.T) {
	target := []float32{0, 0, 0}

	err := ApproximateField[float32](numeric.Real[float32]{}, 1, target, []float64{1, 1, 2}, 4)

	require.NoError(t, err)
	require.Equal(t, []float32{0.25, 0.25, 0.5}, target)
}
