package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focus-pulse/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("garden", "planted sunflower")

	// Assert
	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [garden] planted sunflower\n", string(content))
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("task", "debug message")
	logger.Info("task", "info message")
	logger.Warn("task", "warn message")
	logger.Error("task", "error message")

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "[WARN] [task] warn message")
	assert.Contains(t, string(content), "[ERROR] [task] error message")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	// Must not panic or create files
	logger.Info("focus", "nothing")
	assert.NoError(t, logger.Close())
}

func TestLogger_ReopenAppends(t *testing.T) {
	dataDir := t.TempDir()

	first := New(dataDir, slog.LevelInfo)
	first.Info("app", "one")
	require.NoError(t, first.Close())

	second := New(dataDir, slog.LevelInfo)
	second.Info("app", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("ledger", "credit")
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 50)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "[INFO] [ledger] credit"), line)
	}
}
