package stress_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures concurrent Distributor runs leave no goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
