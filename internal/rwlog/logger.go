// Package rwlog provides the structured logger used by the benchmark
// harness and its CLI. It wraps go.uber.org/zap so call sites pass a
// possibly-nil *zap.Logger around (as internal/bench does) without every
// caller needing a nil check: Nop() swaps in a no-op logger with the same
// type.
package rwlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger at the given level, suitable for a CLI:
// human-readable output on stderr, no sampling, caller annotations always
// on, stack traces only when level is debug or below.
func New(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = level > zapcore.DebugLevel
	return cfg.Build()
}

// Nop returns a logger that discards everything, for callers (library code,
// tests) that accept an optional *zap.Logger and want a safe non-nil
// default instead of checking for nil at every call site.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns l unchanged if it is non-nil, otherwise a no-op logger.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
