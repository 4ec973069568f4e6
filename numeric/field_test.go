package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestReal(t *testing.T) {
	f32 := Real[float32]{}
	f64 := Real[float64]{}

	require.Equal(t, "float32", f32.Name())
	require.Equal(t, "float64", f64.Name())

	require.InDelta(t, 2.5, f64.Quo(f64.Mul(5, f64.FromFloat(1)), 2), 0)
	require.Equal(t, float32(3), f32.Add(1, 2))
	require.Equal(t, float32(-1), f32.Sub(1, 2))
	require.Zero(t, f64.Zero())

	require.True(t, f64.Finite(1e308))
	require.False(t, f64.Finite(math.Inf(1)))
	require.False(t, f64.Finite(math.NaN()))
	require.False(t, f32.Finite(f32.FromFloat(1e300)), "float32 conversion overflows to +Inf")
}

func TestBigFloat(t *testing.T) {
	b := BigFloat{}

	require.Equal(t, "bigfloat", b.Name())
	require.Equal(t, DefaultBigFloatPrecision, b.Zero().Prec())
	require.Equal(t, uint(256), BigFloat{Prec: 256}.FromFloat(1).Prec())

	var unset *big.Float
	sum := b.Add(unset, b.FromFloat(1.5))
	require.Equal(t, 0, sum.Cmp(big.NewFloat(1.5)), "nil is treated as zero")

	q := b.Quo(b.Mul(b.FromFloat(10), b.FromFloat(1)), b.FromFloat(4))
	require.Equal(t, 0, q.Cmp(big.NewFloat(2.5)))

	x := b.FromFloat(3)
	_ = b.Sub(x, b.FromFloat(1))
	require.Equal(t, 0, x.Cmp(big.NewFloat(3)), "arguments are not mutated")

	require.True(t, b.Finite(unset))
	require.True(t, b.Finite(x))
	require.False(t, b.Finite(new(big.Float).SetInf(false)))
}

func TestDecimal(t *testing.T) {
	d := Decimal{}

	require.Equal(t, "decimal", d.Name())
	require.True(t, d.Zero().IsZero())

	share := d.Quo(d.Mul(decimal.RequireFromString("100.50"), d.FromFloat(1)), d.FromFloat(2))
	require.True(t, share.Equal(decimal.RequireFromString("50.25")), "got %s", share)

	require.True(t, d.Add(d.FromFloat(0.1), d.FromFloat(0.2)).Equal(decimal.RequireFromString("0.3")))
	require.True(t, d.Sub(d.FromFloat(1), d.FromFloat(0.25)).Equal(decimal.RequireFromString("0.75")))
	require.True(t, d.Finite(d.FromFloat(1e300)))
}
