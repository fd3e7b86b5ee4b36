// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/rfq-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogBuffer is a synchronized buffer for capturing log output in tests
type testLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer interface for the testLogBuffer
func (b *testLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// entries parses each buffered line as a JSON log entry.
func (b *testLogBuffer) entries(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// restoreDefault resets the process-wide slog default after the test.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupLevels(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		level   string
		enabled []slog.Level
		blocked []slog.Level
	}{
		{level: "debug", enabled: []slog.Level{slog.LevelDebug, slog.LevelInfo}},
		{level: "info", enabled: []slog.Level{slog.LevelInfo, slog.LevelWarn}, blocked: []slog.Level{slog.LevelDebug}},
		{level: "WARN", enabled: []slog.Level{slog.LevelWarn}, blocked: []slog.Level{slog.LevelInfo}},
		{level: "error", enabled: []slog.Level{slog.LevelError}, blocked: []slog.Level{slog.LevelWarn}},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			restoreDefault(t)
			buf := &testLogBuffer{}

			l := logger.Setup(logger.Config{Level: tc.level, Output: buf})

			require.NotNil(t, l)
			for _, level := range tc.enabled {
				assert.True(t, l.Enabled(ctx, level), "%s should be enabled", level)
			}
			for _, level := range tc.blocked {
				assert.False(t, l.Enabled(ctx, level), "%s should be disabled", level)
			}
			assert.Empty(t, buf.entries(t), "a valid level should not produce a warning")
		})
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	ctx := context.Background()
	restoreDefault(t)
	buf := &testLogBuffer{}

	l := logger.Setup(logger.Config{Level: "verbose", Output: buf})

	assert.True(t, l.Enabled(ctx, slog.LevelInfo))
	assert.False(t, l.Enabled(ctx, slog.LevelDebug))

	entries := buf.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "verbose", entries[0]["configured_level"])
	assert.Equal(t, "info", entries[0]["default_level"])
}

func TestSetupSetsDefault(t *testing.T) {
	restoreDefault(t)
	buf := &testLogBuffer{}

	logger.Setup(logger.Config{Level: "info", Output: buf})
	slog.Info("via default", "key", "value")

	entries := buf.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "via default", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
}
