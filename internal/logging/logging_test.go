package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		debug    string
		verbose  bool
		expected zapcore.Level
	}{
		{name: "verbose", verbose: true, expected: zapcore.InfoLevel},
		{name: "quiet", verbose: false, expected: zapcore.WarnLevel},
		{name: "debug overrides quiet", debug: "1", verbose: false, expected: zapcore.DebugLevel},
		{name: "other debug values ignored", debug: "true", verbose: true, expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDebug, tt.debug)
			if got := Level(tt.verbose); got != tt.expected {
				t.Errorf("Level(%v) = %v, expected %v", tt.verbose, got, tt.expected)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	t.Setenv(EnvDebug, "")

	logger := New(false)
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("quiet logger should not emit info")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("quiet logger should emit warnings")
	}
}
