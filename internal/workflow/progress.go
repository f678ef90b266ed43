package workflow

import "time"

// Default timing of the simulated processing stage.
const (
	ProgressDuration = 3000 * time.Millisecond
	ProgressInterval = 30 * time.Millisecond
	ProgressGrace    = 500 * time.Millisecond
)

// Timing configures the progress stage.
type Timing struct {
	Duration time.Duration
	Interval time.Duration
	Grace    time.Duration
}

// DefaultTiming returns the stock 3s run with 30ms ticks and a 500ms grace.
func DefaultTiming() Timing {
	return Timing{Duration: ProgressDuration, Interval: ProgressInterval, Grace: ProgressGrace}
}

// Steps is the number of ticks needed to reach 100 percent.
func (t Timing) Steps() int {
	if t.Interval <= 0 || t.Duration <= t.Interval {
		return 1
	}
	return int(t.Duration / t.Interval)
}

// TickResult reports the outcome of one progress tick.
type TickResult struct {
	Percent  float64
	Finished bool
	// Stale is set when the tick belongs to a run that was cancelled or
	// superseded; the progress is left untouched.
	Stale bool
}

// Progress is a stepper from 0 to 100. Every Start opens a new generation and
// ticks carrying an older generation are ignored. It is not safe for
// concurrent use.
type Progress struct {
	steps   int
	ticks   int
	gen     uint64
	running bool
}

// NewProgress returns an idle stepper for timing.
func NewProgress(timing Timing) *Progress {
	return &Progress{steps: timing.Steps()}
}

// Start resets the percentage to zero and returns the new generation.
func (p *Progress) Start() uint64 {
	p.gen++
	p.ticks = 0
	p.running = true
	return p.gen
}

// Tick advances the run identified by gen by one step. Reaching 100 percent
// finishes the run and later ticks are reported stale.
func (p *Progress) Tick(gen uint64) TickResult {
	if gen != p.gen || !p.running {
		return TickResult{Percent: p.Percent(), Stale: true}
	}
	p.ticks++
	if p.ticks >= p.steps {
		p.ticks = p.steps
		p.running = false
		return TickResult{Percent: 100, Finished: true}
	}
	return TickResult{Percent: p.Percent()}
}

// Cancel abandons the current run and invalidates its generation.
func (p *Progress) Cancel() {
	p.gen++
	p.ticks = 0
	p.running = false
}

// Percent is the current position, clamped to [0, 100].
func (p *Progress) Percent() float64 {
	if p.ticks >= p.steps {
		return 100
	}
	return float64(p.ticks) * 100 / float64(p.steps)
}

// Generation identifies the most recent Start or Cancel.
func (p *Progress) Generation() uint64 { return p.gen }

// Running reports whether a run is accepting ticks.
func (p *Progress) Running() bool { return p.running }

// Finished reports whether the current generation reached 100 percent.
func (p *Progress) Finished() bool { return !p.running && p.ticks >= p.steps }
