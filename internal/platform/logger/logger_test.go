// Package logger_test contains tests for the logger package
package logger_test

import (
	"log/slog"
	"testing"

	"github.com/phrazzld/concentration/internal/config"
	"github.com/phrazzld/concentration/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriter(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn", Port: 8080}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden")
	l.Warn("shown", "index", 3)

	assert.NotContains(t, buf.String(), "hidden")
	logger.AssertLogContains(t, buf, "shown")
	logger.AssertLogField(t, buf, "level", "WARN")
	logger.AssertLogField(t, buf, "index", float64(3))
	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "verbose"}, buf)
	require.NoError(t, err)

	l.Debug("dropped")
	l.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	logger.AssertLogContains(t, buf, "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}
