package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quickmath/internal/clock"
	"github.com/abhisek/quickmath/internal/problemgen"
	"github.com/abhisek/quickmath/internal/settings"
)

// DefaultFeedbackDelay is how long the resolved answer stays on screen
// before the next question.
const DefaultFeedbackDelay = 900 * time.Millisecond

// questionRetries bounds regeneration attempts per option count.
const questionRetries = 3

var (
	// ErrInvalidInput is returned for answers that are not positive integers.
	ErrInvalidInput = errors.New("not a valid answer")

	// ErrAlreadyAnswered is returned when the current question was answered.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrStaleTransition is returned for input that arrives while no session
	// is running.
	ErrStaleTransition = errors.New("session is not running")
)

// OptionSource builds the multiple-choice set for an answer.
// *problemgen.OptionGenerator is the standard implementation.
type OptionSource interface {
	Generate(correct, count int) (problemgen.OptionSet, error)
}

// Options configures a Session.
type Options struct {
	Generator   problemgen.Generator
	Distractors OptionSource

	// Validators vet every generated question before it is shown.
	Validators []problemgen.Validator

	// Scheduler runs the deferred advance to the next question. It must
	// deliver callbacks on the same serial queue as every other call into
	// the Session.
	Scheduler clock.Scheduler

	Listener Listener
	Logger   *slog.Logger

	// FeedbackDelay defaults to DefaultFeedbackDelay.
	FeedbackDelay time.Duration

	// NewID generates session ids. Defaults to uuid.NewString.
	NewID func() string
}

// Session runs timed quizzes. It is not safe for concurrent use: every
// method, and every callback it schedules, must run on one serial queue.
type Session struct {
	gen         problemgen.Generator
	distractors OptionSource
	validators  []problemgen.Validator
	sched       clock.Scheduler
	listener    Listener
	log         *slog.Logger
	delay       time.Duration
	newID       func() string

	state     State
	epoch     uint64
	countdown *Countdown
	pending   clock.Cancel
}

// New creates an idle Session.
func New(opts Options) (*Session, error) {
	if opts.Generator == nil {
		return nil, errors.New("session: generator is required")
	}
	if opts.Distractors == nil {
		return nil, errors.New("session: option generator is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("session: scheduler is required")
	}

	s := &Session{
		gen:         opts.Generator,
		distractors: opts.Distractors,
		validators:  opts.Validators,
		sched:       opts.Scheduler,
		listener:    opts.Listener,
		log:         opts.Logger,
		delay:       opts.FeedbackDelay,
		newID:       opts.NewID,
	}
	if s.listener == nil {
		s.listener = Funcs{}
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.delay <= 0 {
		s.delay = DefaultFeedbackDelay
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s, nil
}

// State returns a snapshot of the current session.
func (s *Session) State() State {
	st := s.state
	st.Options = slices.Clone(st.Options)
	return st
}

// Start begins a new session, abandoning any session in progress. Invalid
// settings fields are replaced by defaults. The returned error is non-nil
// only if no question could be produced, in which case the session has
// already ended.
func (s *Session) Start(cfg settings.Settings) error {
	normalized, invalid := settings.Normalize(cfg)
	for _, e := range invalid {
		s.log.Warn("settings substituted",
			"field", e.Field,
			"value", e.Value,
			"default", e.Default,
			"reason", e.Reason,
			"missing", e.Missing,
		)
	}

	s.cancelPending()
	if s.countdown != nil {
		s.countdown.Cancel()
	}
	s.epoch++

	total := normalized.TimeLimitSeconds()
	s.state = State{
		Settings:  normalized,
		SessionID: s.newID(),
		Phase:     PhaseRunning,
		Remaining: total,
	}
	epoch := s.epoch
	s.countdown = NewCountdown(
		func(remaining int) {
			s.state.Remaining = remaining
			s.listener.TimeUpdated(remaining)
		},
		func() {
			if epoch == s.epoch {
				s.end(EndTimeExpired)
			}
		},
	)
	s.countdown.Start(total)

	s.log.Info("session started",
		"session_id", s.state.SessionID,
		"questions", normalized.NumQuestions,
		"options", normalized.NumOptions,
		"seconds", total,
		"difficulty", normalized.Difficulty.String(),
	)

	s.listener.TimeUpdated(total)
	return s.present()
}

// SubmitAnswer resolves the current question with the picked value and
// schedules the advance to the next one.
func (s *Session) SubmitAnswer(picked int) error {
	if s.state.Phase != PhaseRunning {
		return ErrStaleTransition
	}
	if s.state.Answered {
		return ErrAlreadyAnswered
	}
	if picked <= 0 {
		return fmt.Errorf("%d: %w", picked, ErrInvalidInput)
	}

	s.state.Answered = true
	q := s.state.Question
	isCorrect := q.Check(picked)
	if isCorrect {
		s.state.Score++
	}

	epoch := s.epoch
	s.pending = s.sched.AfterFunc(s.delay, func() { s.advance(epoch) })

	s.log.Debug("answer resolved",
		"question", q.Text(),
		"picked", picked,
		"picked_option", s.state.Options.Index(picked),
		"correct", q.Answer,
		"is_correct", isCorrect,
		"score", s.state.Score,
	)
	s.listener.AnswerResolved(picked, q.Answer, isCorrect)
	return nil
}

// SubmitText parses a typed answer and submits it.
func (s *Session) SubmitText(text string) error {
	if s.state.Phase != PhaseRunning {
		return ErrStaleTransition
	}
	n, err := problemgen.ParseAnswer(text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.SubmitAnswer(n)
}

// Tick advances the countdown by one second. Reaching zero ends the
// session before Tick returns.
func (s *Session) Tick() error {
	if s.state.Phase != PhaseRunning {
		return ErrStaleTransition
	}
	s.countdown.Tick()
	return nil
}

// Stop ends a running session early.
func (s *Session) Stop() {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.end(EndQuit)
}

// advance moves past an answered question. Callbacks from a superseded
// session or arriving after the end are ignored.
func (s *Session) advance(epoch uint64) {
	if epoch != s.epoch || s.state.Phase != PhaseRunning {
		s.log.Debug("stale advance ignored", "epoch", epoch, "current", s.epoch)
		return
	}
	s.pending = nil
	s.state.Index++

	if s.state.Index >= s.state.Settings.NumQuestions {
		s.end(EndCompleted)
		return
	}
	if err := s.present(); err != nil {
		s.log.Error("next question failed", "session_id", s.state.SessionID, "error", err)
	}
}

// present generates and emits the next question. If none can be produced
// the session ends.
func (s *Session) present() error {
	q, options, err := s.prepare()
	if err != nil {
		s.end(EndAborted)
		return err
	}

	s.state.Question = q
	s.state.Options = options
	s.state.Answered = false

	s.log.Debug("question ready",
		"number", s.state.Index+1,
		"question", q.Text(),
		"options", len(options),
	)
	s.listener.QuestionReady(q, slices.Clone(options))
	return nil
}

// prepare produces a validated question with its options. Failed attempts
// are retried, then the option count is reduced one step at a time.
func (s *Session) prepare() (problemgen.Question, problemgen.OptionSet, error) {
	var lastErr error
	for count := s.state.Settings.NumOptions; count >= 2; count-- {
		for attempt := 0; attempt < questionRetries; attempt++ {
			q := s.gen.Generate()
			if err := problemgen.Validate(q, s.validators); err != nil {
				s.log.Warn("generated question rejected", "question", q.Text(), "error", err)
				lastErr = err
				continue
			}

			options, err := s.distractors.Generate(q.Answer, count)
			if err != nil {
				s.log.Warn("option generation failed", "question", q.Text(), "count", count, "error", err)
				lastErr = err
				continue
			}
			if verr := problemgen.ValidateOptions(q, options, count); verr != nil {
				s.log.Warn("option set rejected", "question", q.Text(), "options", options, "error", verr)
				lastErr = verr
				continue
			}
			return q, options, nil
		}
		if count > 2 {
			s.log.Warn("reducing option count", "from", count, "to", count-1)
		}
	}
	return problemgen.Question{}, nil, fmt.Errorf("prepare question: %w", lastErr)
}

// end performs the terminal transition once; later triggers are no-ops.
func (s *Session) end(reason EndReason) {
	if s.state.Terminated {
		return
	}
	s.state.Terminated = true
	s.state.Answered = true
	s.state.Phase = PhaseEnded
	s.state.Reason = reason

	s.countdown.Cancel()
	s.cancelPending()

	stats := Summarize(s.state)
	s.log.Info("session ended",
		"session_id", stats.SessionID,
		"reason", reason.String(),
		"score", stats.Score,
		"questions", stats.NumQuestions,
		"percentage", stats.ScorePercentage,
		"rating", stats.Rating.String(),
	)
	s.listener.SessionEnded(stats)
}

func (s *Session) cancelPending() {
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
}
