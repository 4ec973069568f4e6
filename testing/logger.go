package testing

import (
	"testing"

	"github.com/arloliu/apportion/internal/logger"
	"github.com/arloliu/apportion/types"
)

// NewTestLogger creates a logger that writes to the test log, so Distributor
// warnings (NaN weights, cancelling weights) show up next to the failing test.
//
// Fatal fails the test instead of exiting the process.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
