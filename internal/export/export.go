// Package export writes the placeholder roadmap download.
//
// The file is intentionally empty; only its name carries information.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is the simulated preparation time before the file is written.
const DefaultDelay = 1000 * time.Millisecond

const suffix = "_roadmap.pdf"

var separatorReplacer = strings.NewReplacer("/", "-", `\`, "-")

// FileName returns the download name for topic: spaces become underscores
// and path separators become dashes so the file always lands in the download
// directory itself.
func FileName(topic string) string {
	name := strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")
	name = separatorReplacer.Replace(name)
	if name == "" || name == "." || name == ".." {
		name = "learning_path"
	}
	return name + suffix
}

// Exporter writes empty roadmap files into Dir after Delay.
type Exporter struct {
	Dir    string
	Delay  time.Duration
	Logger *zap.Logger
}

// New returns an Exporter for dir with the default delay.
func New(dir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{Dir: dir, Delay: DefaultDelay, Logger: logger}
}

// Export waits for the configured delay and then writes the empty file,
// returning its path. Cancelling ctx before the delay elapses returns
// ctx.Err() and writes nothing.
func (e *Exporter) Export(ctx context.Context, topic string) (string, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	timer := time.NewTimer(e.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logger.Debug("export cancelled", zap.String("topic", topic))
		return "", ctx.Err()
	case <-timer.C:
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(dir, FileName(topic))
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	logger.Info("roadmap exported", zap.String("topic", topic), zap.String("path", path))
	return path, nil
}
