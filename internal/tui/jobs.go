package tui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type jobKind string

type jobStatus string

const (
	jobKindExport   jobKind = "export"
	jobKindCourses  jobKind = "courses"
	jobKindMarkdown jobKind = "markdown"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
	jobStatusCancelled jobStatus = "cancelled"
)

type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

type jobBus struct {
	counter int64
	logger  *zap.Logger
}

func newJobBus(logger *zap.Logger) *jobBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &jobBus{logger: logger.Named("jobs")}
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

// Start runs runner off the update loop. ctx is owned by the caller; a reset
// cancels it and the runner reports the cancellation as its result.
func (b *jobBus) Start(ctx context.Context, kind jobKind, runner jobRunner) tea.Cmd {
	id := b.nextID(kind)
	started := time.Now()
	startSnapshot := jobSnapshot{ID: id, Kind: kind, Status: jobStatusRunning, StartedAt: started}
	startCmd := func() tea.Msg {
		return jobSignalMsg{Snapshot: startSnapshot}
	}

	runCmd := func() tea.Msg {
		return b.run(ctx, id, kind, started, runner)
	}

	return tea.Sequence(startCmd, runCmd)
}

func (b *jobBus) run(ctx context.Context, id string, kind jobKind, started time.Time, runner jobRunner) jobResultEnvelope {
	payload, err := runner(ctx)
	snapshot := jobSnapshot{
		ID:          id,
		Kind:        kind,
		StartedAt:   started,
		CompletedAt: time.Now(),
	}
	switch {
	case err == nil:
		snapshot.Status = jobStatusSucceeded
	case ctx.Err() != nil:
		snapshot.Status = jobStatusCancelled
		snapshot.Err = err.Error()
	default:
		snapshot.Status = jobStatusFailed
		snapshot.Err = err.Error()
	}
	snapshot.Duration = snapshot.CompletedAt.Sub(started)
	b.logger.Info("job finished",
		zap.String("id", id),
		zap.String("kind", string(kind)),
		zap.String("status", string(snapshot.Status)),
		zap.Duration("duration", snapshot.Duration),
		zap.Error(err))
	return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
}
