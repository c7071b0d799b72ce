// Package logging builds the diagnostics logger used across the tool.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a no-op logger unless debug is set, in which case it returns a
// human-readable debug logger writing to stderr.
func New(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	return NewWriter(os.Stderr)
}

// NewWriter returns a debug-level console logger writing to w.
func NewWriter(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
