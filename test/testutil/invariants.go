package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/arloliu/apportion/numeric"
)

// Deltas returns after[i] - before[i] widened to int64.
//
// Parameters:
//   - before: target snapshot taken before the call
//   - after: target after the call
func Deltas[T numeric.Signed](before, after []T) []int64 {
	d := make([]int64, len(after))
	for i := range after {
		d[i] = int64(after[i]) - int64(before[i])
	}

	return d
}

// AssertConserved verifies that the per-call deltas sum to exactly value.
//
// Parameters:
//   - t: testing handle
//   - before: target snapshot taken before the call
//   - after: target after the call
//   - value: the distributed value
func AssertConserved[T numeric.Signed](t testing.TB, before, after []T, value T) {
	t.Helper()

	if len(before) != len(after) {
		t.Fatalf("target length changed: before=%d after=%d", len(before), len(after))
	}

	var sum int64
	for _, d := range Deltas(before, after) {
		sum += d
	}

	if sum != int64(value) {
		t.Fatalf("sum of deltas (%d) does not equal distributed value (%d)", sum, int64(value))
	}
}

// AssertNonNegativeDeltas verifies that no slot lost value during the call.
func AssertNonNegativeDeltas[T numeric.Signed](t testing.TB, before, after []T) {
	t.Helper()

	for i, d := range Deltas(before, after) {
		if d < 0 {
			t.Fatalf("slot %d has negative delta %d", i, d)
		}
	}
}

// AssertFloatConserved verifies that float64 deltas sum to value within a
// relative tolerance.
func AssertFloatConserved(t testing.TB, before, after []float64, value, tol float64) {
	t.Helper()

	d := make([]float64, len(after))
	floats.SubTo(d, after, before)
	got := floats.Sum(d)

	if !scalar.EqualWithinAbsOrRel(got, value, tol, tol) || math.IsNaN(got) {
		t.Fatalf("sum of deltas (%v) does not equal distributed value (%v)", got, value)
	}
}
