package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "agentpad.log")
	l := New(path, slog.LevelInfo)
	defer func() { _ = l.Close() }()

	l.Info("pad", "appended NOTE by a1")
	l.Warn("scan", "skipped malformed entry")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [pad] appended NOTE by a1")
	assert.Contains(t, string(content), "[WARN] [scan] skipped malformed entry")
}

func TestLogger_LevelGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentpad.log")
	l := New(path, slog.LevelWarn)
	defer func() { _ = l.Close() }()

	l.Debug("pad", "too quiet")
	l.Info("pad", "still too quiet")
	l.Error("pad", "loud enough")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "too quiet")
	assert.Contains(t, string(content), "[ERROR] [pad] loud enough")
}

func TestLogger_Disabled(t *testing.T) {
	l := New("", slog.LevelDebug)
	// Must not panic or create anything.
	l.Info("pad", "ignored")
	assert.NoError(t, l.Close())
}
