package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/csheth/pathscout/internal/curriculum"
)

var tinyTiming = Timing{Duration: 3 * time.Millisecond, Interval: time.Millisecond, Grace: time.Millisecond}

func runToCompletion(t *testing.T, s *Session) uint64 {
	t.Helper()
	gen := s.Progress().Generation()
	for i := 0; i < 1000; i++ {
		if s.Progress().Tick(gen).Finished {
			return gen
		}
	}
	t.Fatal("progress never finished")
	return 0
}

func TestSubmitRejectsIncompleteIntake(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		level string
		want  error
	}{
		{name: "empty topic", topic: "", level: "beginner", want: ErrTopicRequired},
		{name: "blank topic", topic: "   ", level: "beginner", want: ErrTopicRequired},
		{name: "empty level", topic: "Web Development", level: "", want: ErrSkillLevelRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			_, note, err := s.Submit(tt.topic, tt.level, false)
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrIncompleteIntake)
			assert.Equal(t, PhaseIdle, s.Phase())
			assert.Equal(t, NotifyError, note.Kind)
			assert.Equal(t, RejectionMessage, note.Message)
			_, ok := s.Request()
			assert.False(t, ok)
		})
	}
}

func TestSubmitAcceptsCompleteIntake(t *testing.T) {
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSession(WithClock(func() time.Time { return stamp }))

	req, note, err := s.Submit(" Web Development ", "Beginner", true)
	require.NoError(t, err)
	assert.Equal(t, PhaseAwaitingResult, s.Phase())
	assert.Equal(t, IntakeRequest{Topic: "Web Development", SkillLevel: curriculum.Beginner, AIEnhanced: true, SubmittedAt: stamp}, req)
	assert.Equal(t, NotifyInfo, note.Kind)
	assert.Contains(t, note.Message, "Web Development")
	assert.True(t, s.Progress().Running())
	assert.Zero(t, s.Progress().Percent())

	stored, ok := s.Request()
	require.True(t, ok)
	assert.Equal(t, req, stored)
}

func TestSubmitIsSingleFlight(t *testing.T) {
	s := NewSession()
	_, _, err := s.Submit("Web Development", "beginner", false)
	require.NoError(t, err)

	_, _, err = s.Submit("Data Science", "advanced", false)
	assert.ErrorIs(t, err, ErrRequestInFlight)
	req, _ := s.Request()
	assert.Equal(t, "Web Development", req.Topic)
}

func TestUnknownLevelIsCarriedThrough(t *testing.T) {
	s := NewSession(WithTiming(tinyTiming))
	req, _, err := s.Submit("Quantum Computing", "expert", false)
	require.NoError(t, err)
	assert.Equal(t, curriculum.SkillLevel("expert"), req.SkillLevel)

	_, ok := s.Complete(runToCompletion(t, s))
	require.True(t, ok)
	result, _ := s.Result()
	assert.Len(t, result.LearningPath, 7)
}

func TestCompleteDerivesResult(t *testing.T) {
	s := NewSession(WithTiming(tinyTiming))
	_, _, err := s.Submit("Web Development", "beginner", true)
	require.NoError(t, err)

	gen := runToCompletion(t, s)
	assert.Equal(t, float64(100), s.Progress().Percent())

	note, ok := s.Complete(gen)
	require.True(t, ok)
	assert.Equal(t, NotifySuccess, note.Kind)
	assert.Equal(t, ReadyMessage, note.Message)
	assert.Equal(t, PhaseReady, s.Phase())

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, curriculum.Derive("Web Development", curriculum.Beginner), result)

	_, again := s.Complete(gen)
	assert.False(t, again, "completion is delivered once")
}

func TestCompleteIgnoresUnfinishedOrStaleRuns(t *testing.T) {
	s := NewSession(WithTiming(tinyTiming))
	_, _, err := s.Submit("Web Development", "beginner", false)
	require.NoError(t, err)
	gen := s.Progress().Generation()

	_, ok := s.Complete(gen)
	assert.False(t, ok, "progress has not reached 100")

	_, ok = s.Complete(gen + 7)
	assert.False(t, ok)
	assert.Equal(t, PhaseAwaitingResult, s.Phase())
}

func TestResetMidProgressDropsCompletion(t *testing.T) {
	s := NewSession(WithTiming(tinyTiming))
	_, _, err := s.Submit("Web Development", "beginner", false)
	require.NoError(t, err)
	gen := s.Progress().Generation()
	s.Progress().Tick(gen)

	s.Reset()
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.True(t, s.Progress().Tick(gen).Stale)

	_, ok := s.Complete(gen)
	assert.False(t, ok)
	_, hasResult := s.Result()
	assert.False(t, hasResult)
}

func TestResetFromReadyAllowsNewRequest(t *testing.T) {
	s := NewSession(WithTiming(tinyTiming))
	_, _, err := s.Submit("Web Development", "beginner", false)
	require.NoError(t, err)
	_, ok := s.Complete(runToCompletion(t, s))
	require.True(t, ok)

	s.Reset()
	_, hasReq := s.Request()
	_, hasResult := s.Result()
	assert.False(t, hasReq)
	assert.False(t, hasResult)
	assert.Zero(t, s.Progress().Percent())

	_, _, err = s.Submit("Data Science", "advanced", false)
	require.NoError(t, err)
	_, ok = s.Complete(runToCompletion(t, s))
	require.True(t, ok)
	result, _ := s.Result()
	assert.Equal(t, "Python for Data", result.LearningPath[0].Label)
}

func TestSessionLogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewSession(WithLogger(zap.New(core)), WithTiming(tinyTiming))

	_, _, err := s.Submit("DevOps", "intermediate", false)
	require.NoError(t, err)
	_, ok := s.Complete(runToCompletion(t, s))
	require.True(t, ok)
	s.Reset()

	entries := logs.FilterMessage("session phase changed").All()
	require.Len(t, entries, 3)
	var got []string
	for _, e := range entries {
		got = append(got, e.ContextMap()["to"].(string))
		assert.Equal(t, s.ID.String(), e.ContextMap()["session"])
	}
	assert.Equal(t, []string{"awaiting_result", "ready", "idle"}, got)
	assert.Equal(t, "DevOps", entries[0].ContextMap()["topic"])
}

func TestSessionsGetDistinctIDs(t *testing.T) {
	assert.NotEqual(t, NewSession().ID, NewSession().ID)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "awaiting_result", PhaseAwaitingResult.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
