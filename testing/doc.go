// Package testing provides test utilities for the apportion library.
//
// It follows Go's convention of shipping testing helpers in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger writing to the test log
//   - NewDistributor: Seeded Distributor that fails the test on setup errors
//   - Sequence: Weight source replaying fixed vectors, for exercising resampling
//
// Example usage:
//
//	import (
//	    "testing"
//	    apportiontest "github.com/arloliu/apportion/testing"
//	)
//
//	func TestBudget(t *testing.T) {
//	    d := apportiontest.NewDistributor(t, apportion.WithSource(apportiontest.NewSequence([]float64{3, 1})))
//	    // ...
//	}
package testing
