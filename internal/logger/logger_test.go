package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel covers known names, casing, whitespace, and the unknown
// fallback.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  zapcore.Level
		ok    bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{" warn ", zapcore.WarnLevel, true},
		{"Error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLogLevel(tc.input)
		require.Equal(t, tc.ok, ok, "input=%q", tc.input)
		require.Equal(t, tc.want, got, "input=%q", tc.input)
	}
}

// TestLoggerIsInitialized ensures the package-level logger exists without
// explicit setup.
func TestLoggerIsInitialized(t *testing.T) {
	t.Parallel()
	require.NotNil(t, Logger())
}
