// Package workflow owns the intake, simulated processing and reset cycle of a
// single learning path request.
package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csheth/pathscout/internal/curriculum"
)

var (
	// ErrIncompleteIntake is wrapped by every intake validation failure.
	ErrIncompleteIntake   = errors.New("incomplete intake")
	ErrTopicRequired      = fmt.Errorf("%w: topic is required", ErrIncompleteIntake)
	ErrSkillLevelRequired = fmt.Errorf("%w: skill level is required", ErrIncompleteIntake)
	// ErrRequestInFlight is returned by Submit outside the Idle phase.
	ErrRequestInFlight = errors.New("a request is already in progress")
)

// Notification messages shown to the user.
const (
	ReadyMessage     = "Learning path ready!"
	RejectionMessage = "Select a topic and a skill level to continue."
)

// Phase is the position of a Session in the request cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingResult
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingResult:
		return "awaiting_result"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// IntakeRequest is an accepted form submission. It is never modified.
type IntakeRequest struct {
	Topic       string
	SkillLevel  curriculum.SkillLevel
	AIEnhanced  bool
	SubmittedAt time.Time
}

// NotificationKind selects how a Notification is styled.
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifySuccess
	NotifyError
)

// Notification is a short, transient message for the user.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// SubmittedMessage is the notification text for an accepted request.
func SubmittedMessage(topic string) string {
	return "Request submitted: " + topic
}

// Session holds at most one request and its result. It is meant to be owned
// by a single goroutine.
type Session struct {
	ID uuid.UUID

	phase    Phase
	request  *IntakeRequest
	result   *curriculum.Result
	progress *Progress

	logger *zap.Logger
	now    func() time.Time
}

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the logger used for phase transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTiming sets the progress stage timing.
func WithTiming(timing Timing) Option {
	return func(s *Session) { s.progress = NewProgress(timing) }
}

// WithClock overrides the time source used to stamp requests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession returns an idle session with a fresh ID.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ID:       uuid.New(),
		progress: NewProgress(DefaultTiming()),
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.ID.String()))
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Progress returns the session's progress stepper.
func (s *Session) Progress() *Progress { return s.progress }

// Request returns the accepted request, if any.
func (s *Session) Request() (IntakeRequest, bool) {
	if s.request == nil {
		return IntakeRequest{}, false
	}
	return *s.request, true
}

// Result returns the derived learning path once the session is Ready.
func (s *Session) Result() (curriculum.Result, bool) {
	if s.result == nil {
		return curriculum.Result{}, false
	}
	return *s.result, true
}

// Submit validates the form values and, when they are complete, records the
// request and starts the progress stage. Rejected submissions leave the
// session unchanged.
func (s *Session) Submit(topic, skillLevel string, aiEnhanced bool) (IntakeRequest, Notification, error) {
	if s.phase != PhaseIdle {
		return IntakeRequest{}, Notification{}, ErrRequestInFlight
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return IntakeRequest{}, Notification{Kind: NotifyError, Message: RejectionMessage}, ErrTopicRequired
	}
	level, _ := curriculum.ParseSkillLevel(skillLevel)
	if level == "" {
		return IntakeRequest{}, Notification{Kind: NotifyError, Message: RejectionMessage}, ErrSkillLevelRequired
	}

	req := IntakeRequest{
		Topic:       topic,
		SkillLevel:  level,
		AIEnhanced:  aiEnhanced,
		SubmittedAt: s.now(),
	}
	s.request = &req
	s.result = nil
	gen := s.progress.Start()
	s.transition(PhaseAwaitingResult,
		zap.String("topic", req.Topic),
		zap.String("level", string(req.SkillLevel)),
		zap.Bool("ai_enhanced", req.AIEnhanced),
		zap.Uint64("generation", gen))

	return req, Notification{Kind: NotifyInfo, Message: SubmittedMessage(req.Topic)}, nil
}

// Complete finishes the run identified by gen: the session becomes Ready and
// the result is derived. Completions for cancelled or superseded runs, or
// arriving outside AwaitingResult, return false and change nothing.
func (s *Session) Complete(gen uint64) (Notification, bool) {
	if s.phase != PhaseAwaitingResult || gen != s.progress.Generation() || !s.progress.Finished() {
		s.logger.Debug("ignoring stale completion",
			zap.Uint64("generation", gen),
			zap.Stringer("phase", s.phase))
		return Notification{}, false
	}
	result := curriculum.Derive(s.request.Topic, s.request.SkillLevel)
	s.result = &result
	s.transition(PhaseReady, zap.Uint64("generation", gen))
	return Notification{Kind: NotifySuccess, Message: ReadyMessage}, true
}

// Reset discards the request, the result and any running progress.
func (s *Session) Reset() {
	s.progress.Cancel()
	s.request = nil
	s.result = nil
	s.transition(PhaseIdle)
}

func (s *Session) transition(to Phase, fields ...zap.Field) {
	from := s.phase
	s.phase = to
	fields = append([]zap.Field{zap.Stringer("from", from), zap.Stringer("to", to)}, fields...)
	s.logger.Info("session phase changed", fields...)
}
