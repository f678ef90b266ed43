package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Web Development":  "Web_Development_roadmap.pdf",
		"  DevOps ":        "DevOps_roadmap.pdf",
		"UI/UX Design":     "UI-UX_Design_roadmap.pdf",
		`a\b`:              "a-b_roadmap.pdf",
		"":                 "learning_path_roadmap.pdf",
		"..":               "learning_path_roadmap.pdf",
		"Machine Learning": "Machine_Learning_roadmap.pdf",
	}
	for topic, want := range tests {
		assert.Equal(t, want, FileName(topic), topic)
	}
}

func TestExportWritesEmptyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	e := New(dir, nil)
	e.Delay = 5 * time.Millisecond

	start := time.Now()
	path, err := e.Export(context.Background(), "Web Development")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), e.Delay)
	assert.Equal(t, filepath.Join(dir, "Web_Development_roadmap.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestExportCancelledWritesNothing(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)
	e.Delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	path, err := e.Export(ctx, "Web Development")
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportSurfacesIOErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	e := &Exporter{Dir: filepath.Join(blocker, "sub"), Delay: 0}
	_, err := e.Export(context.Background(), "Web Development")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create download dir")
}
