package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

type ticket int32

func TestIntegerOf_Bits(t *testing.T) {
	require.Equal(t, 32, IntegerOf[int32]().Bits())
	require.Equal(t, 64, IntegerOf[int64]().Bits())
	require.Equal(t, 32, IntegerOf[ticket]().Bits())
	require.Equal(t, "int32", IntegerOf[int32]().Name())
	require.Equal(t, "int64", IntegerOf[int64]().Name())
}

func TestInteger_Trunc(t *testing.T) {
	a := IntegerOf[int32]()

	tests := []struct {
		in   float64
		want int32
	}{
		{7.5, 7},
		{7.9999, 7},
		{-7.5, -7},
		{-0.4, 0},
		{0, 0},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
		{math.MaxInt32 + 0.9, math.MaxInt32},
	}

	for _, tt := range tests {
		got, err := a.Trunc(tt.in)
		require.NoError(t, err, "in=%v", tt.in)
		require.Equal(t, tt.want, got, "in=%v", tt.in)
	}
}

func TestInteger_TruncOverflow(t *testing.T) {
	a32 := IntegerOf[int32]()
	for _, f := range []float64{math.MaxInt32 + 1, math.MinInt32 - 1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := a32.Trunc(f)
		require.ErrorIs(t, err, types.ErrOverflow, "in=%v", f)
	}

	a64 := IntegerOf[int64]()
	_, err := a64.Trunc(math.Ldexp(1, 63))
	require.ErrorIs(t, err, types.ErrOverflow)

	v, err := a64.Trunc(-math.Ldexp(1, 63))
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)
}

func TestInteger_Round(t *testing.T) {
	a := IntegerOf[int64]()

	for in, want := range map[float64]int64{3.33: 3, 3.5: 4, -3.5: -4, 2.49: 2, -0.2: 0} {
		got, err := a.Round(in)
		require.NoError(t, err)
		require.Equal(t, want, got, "in=%v", in)
	}
}

func TestInteger_CheckedArithmetic(t *testing.T) {
	a := IntegerOf[int32]()

	s, err := a.Add(40, 2)
	require.NoError(t, err)
	require.Equal(t, int32(42), s)

	_, err = a.Add(math.MaxInt32, 1)
	require.ErrorIs(t, err, types.ErrOverflow)

	_, err = a.Add(math.MinInt32, -1)
	require.ErrorIs(t, err, types.ErrOverflow)

	d, err := a.Sub(-5, 10)
	require.NoError(t, err)
	require.Equal(t, int32(-15), d)

	_, err = a.Sub(math.MinInt32, 1)
	require.ErrorIs(t, err, types.ErrOverflow)

	_, err = a.Sub(math.MaxInt32, -1)
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestInteger_FromInt64(t *testing.T) {
	a := IntegerOf[int32]()

	v, err := a.FromInt64(-12)
	require.NoError(t, err)
	require.Equal(t, int32(-12), v)

	_, err = a.FromInt64(math.MaxInt32 + 1)
	require.ErrorIs(t, err, types.ErrOverflow)

	b := IntegerOf[int64]()
	w, err := b.FromInt64(math.MinInt64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), w)
	require.Equal(t, int64(math.MinInt64), b.Int64(w))
}
