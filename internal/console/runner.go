// Package console plays a quiz over plain line-oriented input and output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/quickmath/internal/clock"
	"github.com/abhisek/quickmath/internal/problemgen"
	"github.com/abhisek/quickmath/internal/session"
	"github.com/abhisek/quickmath/internal/settings"
)

// Config wires a Runner.
type Config struct {
	In  io.Reader
	Out io.Writer

	Generator   problemgen.Generator
	Distractors session.OptionSource
	Validators  []problemgen.Validator
	Logger      *slog.Logger

	// FeedbackDelay is passed to the session. Zero uses its default.
	FeedbackDelay time.Duration

	// TickInterval is the length of one countdown second. Defaults to 1s.
	TickInterval time.Duration
}

// Runner drives one session at a time from a reader. All session calls run
// on a clock.Loop; the input reader and timers only post work to it.
type Runner struct {
	cfg Config
}

// New returns a Runner.
func New(cfg Config) *Runner {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{cfg: cfg}
}

// Run plays one quiz and returns its stats. It returns when the session
// ends or ctx is cancelled; a cancelled quiz ends as quit and its summary
// is still printed. Running out of input does not end the quiz; the
// countdown still does.
func (r *Runner) Run(ctx context.Context, cfg settings.Settings) (session.Stats, error) {
	loop := clock.NewLoop()
	p := &printer{w: r.cfg.Out}

	var (
		stats session.Stats
		ended bool
	)
	listener := session.Funcs{
		OnQuestionReady:  p.question,
		OnAnswerResolved: p.answer,
		OnTimeUpdated:    p.time,
		OnSessionEnded: func(s session.Stats) {
			stats, ended = s, true
			p.summary(s)
			loop.Stop()
		},
	}

	sess, err := session.New(session.Options{
		Generator:     r.cfg.Generator,
		Distractors:   r.cfg.Distractors,
		Validators:    r.cfg.Validators,
		Scheduler:     loop,
		Listener:      listener,
		Logger:        r.cfg.Logger,
		FeedbackDelay: r.cfg.FeedbackDelay,
	})
	if err != nil {
		return session.Stats{}, err
	}

	var startErr error
	loop.Post(func() {
		p.total = cfg.NumQuestions
		if startErr = sess.Start(cfg); startErr != nil {
			loop.Stop()
			return
		}
		p.total = sess.State().Settings.NumQuestions
	})

	stopTicks := loop.Every(r.cfg.TickInterval, func() {
		if err := sess.Tick(); err != nil {
			r.cfg.Logger.Debug("tick ignored", "error", err)
		}
	})
	defer stopTicks()

	go r.readLines(loop, func(line string) { r.handleLine(sess, p, line) })

	runErr := loop.Run(ctx)
	if startErr != nil {
		return stats, fmt.Errorf("start quiz: %w", startErr)
	}
	if !ended && runErr != nil {
		// The loop has stopped, so nothing else can reach the session now.
		sess.Stop()
		return stats, runErr
	}
	return stats, nil
}

// readLines posts each input line onto the loop until EOF or the loop stops.
func (r *Runner) readLines(loop *clock.Loop, handle func(string)) {
	sc := bufio.NewScanner(r.cfg.In)
	for sc.Scan() {
		line := sc.Text()
		if !loop.Post(func() { handle(line) }) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		r.cfg.Logger.Warn("input closed", "error", err)
	}
}

func (r *Runner) handleLine(sess *session.Session, p *printer, line string) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return
	case "q", "quit":
		sess.Stop()
		return
	}

	err := sess.SubmitText(line)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrInvalidInput):
		p.invalid(line)
	default:
		r.cfg.Logger.Debug("input ignored", "input", line, "error", err)
	}
}
