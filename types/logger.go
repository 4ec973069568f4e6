package types

// Logger is the structured logging contract of the library.
//
// Methods take a message followed by alternating key-value pairs, the calling
// convention of zap.SugaredLogger's "w" methods and of log/slog. Adapters for
// both live in internal/logging; nop, recording and testing.TB loggers live in
// internal/logger.
//
// The Distributor logs at Debug (construction, uniform fallback, resample
// attempts, remainder correction) and Warn (NaN weights, cancelling weights,
// questionable configuration). It never calls Fatal.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs the message and terminates the process.
	Fatal(msg string, keysAndValues ...any)
}
