package policy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func TestRemap(t *testing.T) {
	w := []float64{-1, 0, 3}

	Remap{Min: 10, Max: 20}.Apply(w)

	require.InDeltaSlice(t, []float64{10, 12.5, 20}, w, 1e-12)
}

func TestRemap_Constant(t *testing.T) {
	w := []float64{4, 4, 4}

	Remap{Min: 0, Max: 1}.Apply(w)

	require.Equal(t, []float64{0.5, 0.5, 0.5}, w)
}

func TestRemap_Empty(t *testing.T) {
	require.NotPanics(t, func() { Remap{Min: 0, Max: 1}.Apply(nil) })
}

func TestClamp(t *testing.T) {
	w := []float64{-2, 0.5, 7}

	Clamp{Min: 0, Max: 1}.Apply(w)

	require.Equal(t, []float64{0, 0.5, 1}, w)
}

func TestBias_Shapes(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []float64
	}{
		{ShapeStart, []float64{1, 0.5, 0}},
		{ShapeEnd, []float64{0, 0.5, 1}},
		{ShapeCenter, []float64{0, 1, 0}},
		{ShapeEdges, []float64{1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			w := []float64{1, 1, 1}
			Bias{Shape: tt.shape, Strength: 1}.Apply(w)
			if diff := cmp.Diff(tt.want, w, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Bias(%s) mismatch (-want +got):\n%s", tt.shape, diff)
			}
		})
	}
}

func TestBias_Strength(t *testing.T) {
	w := []float64{2, 2, 2}
	Bias{Shape: ShapeEnd, Strength: 0.5}.Apply(w)
	require.InDeltaSlice(t, []float64{1, 1.5, 2}, w, 1e-12)

	w = []float64{2, 2}
	Bias{Shape: ShapeEnd, Strength: 0}.Apply(w)
	require.Equal(t, []float64{2, 2}, w)

	w = []float64{2}
	Bias{Shape: ShapeCenter, Strength: 5}.Apply(w)
	require.InDeltaSlice(t, []float64{2}, w, 1e-12, "a single slot sits at the center")
}

func TestPower(t *testing.T) {
	w := []float64{-3, 0, 2, 0.25}

	Power{Exponent: 2}.Apply(w)

	require.InDeltaSlice(t, []float64{-9, 0, 4, 0.0625}, w, 1e-12)

	w = []float64{0, 4}
	Power{Exponent: 0.5}.Apply(w)
	require.Equal(t, []float64{0, 2}, w)
}

func TestChain_OrderMatters(t *testing.T) {
	a := []float64{-1, 0, 1}
	Chain{Clamp{Min: 0, Max: 1}, Remap{Min: 1, Max: 2}}.Apply(a)
	require.InDeltaSlice(t, []float64{1, 1, 2}, a, 1e-12)

	b := []float64{-1, 0, 1}
	Chain{Remap{Min: 1, Max: 2}, Clamp{Min: 0, Max: 1}}.Apply(b)
	require.InDeltaSlice(t, []float64{1, 1, 1}, b, 1e-12)
}

func TestChain_AcceptsFuncs(t *testing.T) {
	calls := 0
	c := Chain{types.WeightPolicyFunc(func(w []float64) {
		calls++
		w[0] = 9
	})}

	w := []float64{1}
	c.Apply(w)

	require.Equal(t, 1, calls)
	require.Equal(t, []float64{9}, w)
}
