package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/pathscout/internal/config"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pathscout.log")
	logger, err := New(config.LoggingConfig{File: path, Level: "info"}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Contains(t, entries[0], "pid")
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathscout.log")
	logger, err := New(config.LoggingConfig{File: path, Level: "error"}, true)
	require.NoError(t, err)

	logger.Debug("shown")
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, false)
	assert.Error(t, err)
}

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("discarded")
}
