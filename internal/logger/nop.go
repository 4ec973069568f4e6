// Package logger provides no-op, recording and testing.TB backed loggers.
package logger

import "github.com/arloliu/apportion/types"

// NopLogger discards every entry. It is the Distributor's default logger and
// the logger used by the stateless Exact and Approximate helpers.
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithLogger(logger.NewNop()))
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop returns a logger that discards all entries.
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (*NopLogger) Debug(string, ...any) {}
func (*NopLogger) Info(string, ...any)  {}
func (*NopLogger) Warn(string, ...any)  {}
func (*NopLogger) Error(string, ...any) {}

// Fatal discards the entry and, unlike production loggers, does not exit.
func (*NopLogger) Fatal(string, ...any) {}
