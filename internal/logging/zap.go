package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/apportion/types"
)

// ZapLogger implements types.Logger on top of zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZap wraps a sugared zap logger.
//
// Parameters:
//   - sugar: The zap logger to write to (a no-op logger if nil)
//
// Returns:
//   - *ZapLogger: Logger forwarding to sugar's Debugw/Infow/... methods
func NewZap(sugar *zap.SugaredLogger) *ZapLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}

	return &ZapLogger{sugar: sugar}
}

// NewZapProduction builds a JSON zap logger at the given level.
//
// Parameters:
//   - verbose: Log at debug level instead of info
//
// Returns:
//   - *ZapLogger: Ready-to-use logger
//   - func(): Flushes buffered entries; call before exit
//   - error: Build error from zap
func NewZapProduction(verbose bool) (*ZapLogger, func(), error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	z, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewZap(z.Sugar()), func() { _ = z.Sync() }, nil
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.sugar.Fatalw(msg, keysAndValues...)
}
