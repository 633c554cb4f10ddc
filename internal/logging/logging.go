// Package logging builds the zap logger shared by the xcp commands.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvDebug turns on debug output when set to "1".
const EnvDebug = "XCP_DEBUG"

// Level picks the log level: debug when XCP_DEBUG=1, info when verbose,
// warn otherwise.
func Level(verbose bool) zapcore.Level {
	if os.Getenv(EnvDebug) == "1" {
		return zapcore.DebugLevel
	}
	if verbose {
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}

// New returns a console logger writing to stderr, so it never mixes with the
// command output on stdout.
func New(verbose bool) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(Level(verbose)),
	)
	return zap.New(core)
}
