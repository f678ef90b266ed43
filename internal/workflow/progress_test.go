package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimingSteps(t *testing.T) {
	assert.Equal(t, 100, DefaultTiming().Steps())
	assert.Equal(t, 1, Timing{Duration: time.Millisecond, Interval: time.Second}.Steps())
	assert.Equal(t, 1, Timing{Duration: time.Second}.Steps())
}

func TestProgressRunsToExactlyHundred(t *testing.T) {
	p := NewProgress(DefaultTiming())
	gen := p.Start()

	var last TickResult
	for i := 1; i <= 100; i++ {
		last = p.Tick(gen)
		require.False(t, last.Stale, "tick %d", i)
		assert.InDelta(t, float64(i), last.Percent, 1e-9)
		if i < 100 {
			require.False(t, last.Finished, "tick %d", i)
		}
	}
	assert.True(t, last.Finished)
	assert.Equal(t, float64(100), last.Percent)
	assert.True(t, p.Finished())
	assert.False(t, p.Running())

	after := p.Tick(gen)
	assert.True(t, after.Stale)
	assert.Equal(t, float64(100), after.Percent)
}

func TestProgressClampsUnevenSteps(t *testing.T) {
	p := NewProgress(Timing{Duration: 100 * time.Millisecond, Interval: 30 * time.Millisecond})
	gen := p.Start()

	var res TickResult
	for i := 0; i < 3; i++ {
		res = p.Tick(gen)
	}
	assert.True(t, res.Finished)
	assert.Equal(t, float64(100), res.Percent)
}

func TestProgressRestartResetsAndInvalidates(t *testing.T) {
	p := NewProgress(DefaultTiming())
	first := p.Start()
	p.Tick(first)
	p.Tick(first)

	second := p.Start()
	assert.NotEqual(t, first, second)
	assert.Zero(t, p.Percent())

	stale := p.Tick(first)
	assert.True(t, stale.Stale)
	assert.Zero(t, p.Percent())

	assert.Equal(t, float64(1), p.Tick(second).Percent)
}

func TestProgressCancel(t *testing.T) {
	p := NewProgress(DefaultTiming())
	gen := p.Start()
	p.Tick(gen)

	p.Cancel()
	assert.False(t, p.Running())
	assert.False(t, p.Finished())
	assert.Zero(t, p.Percent())
	assert.True(t, p.Tick(gen).Stale)
}

func TestProgressIdleTicksAreStale(t *testing.T) {
	p := NewProgress(DefaultTiming())
	assert.True(t, p.Tick(p.Generation()).Stale)
}
