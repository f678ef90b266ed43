package workflow

import (
	"context"
	"sync"
	"time"
)

// Timer drives a Progress on its own goroutine. It calls OnTick after every
// step and, once the run reaches 100 percent and the grace delay has passed,
// calls OnComplete exactly once. A run that is cancelled before the grace
// delay elapses never completes.
//
// The callbacks run on the timer goroutine and must not call Start or Cancel.
// While a run is active the Progress belongs to the timer.
type Timer struct {
	interval time.Duration
	grace    time.Duration

	OnTick     func(percent float64)
	OnComplete func(gen uint64)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTimer returns a timer using timing's interval and grace delay.
func NewTimer(timing Timing) *Timer {
	return &Timer{interval: timing.Interval, grace: timing.Grace}
}

// Start runs p for generation gen, cancelling any run already in progress.
func (t *Timer) Start(ctx context.Context, p *Progress, gen uint64) {
	t.Cancel()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.mu.Lock()
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go t.run(ctx, p, gen, done)
}

// Cancel stops the current run and waits for its goroutine to exit.
func (t *Timer) Cancel() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	if cancel != nil {
		cancel()
	}
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Wait blocks until the current run has completed or been cancelled.
func (t *Timer) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (t *Timer) run(ctx context.Context, p *Progress, gen uint64, done chan struct{}) {
	defer close(done)

	if !t.tick(ctx, p, gen) {
		return
	}

	grace := time.NewTimer(t.grace)
	defer grace.Stop()
	select {
	case <-ctx.Done():
		return
	case <-grace.C:
	}

	t.mu.Lock()
	cancelled := ctx.Err() != nil
	t.mu.Unlock()
	if cancelled {
		return
	}
	if t.OnComplete != nil {
		t.OnComplete(gen)
	}
}

// tick steps p until it finishes. It returns false when the run was
// cancelled or went stale first.
func (t *Timer) tick(ctx context.Context, p *Progress, gen uint64) bool {
	interval := t.interval
	if interval <= 0 {
		interval = ProgressInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			res := p.Tick(gen)
			if res.Stale {
				return false
			}
			if t.OnTick != nil {
				t.OnTick(res.Percent)
			}
			if res.Finished {
				return true
			}
		}
	}
}
