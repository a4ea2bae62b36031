// Package quiz is the screen that plays one timed session.
package quiz

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmath/internal/clock"
	"github.com/abhisek/quickmath/internal/problemgen"
	"github.com/abhisek/quickmath/internal/router"
	"github.com/abhisek/quickmath/internal/screen"
	"github.com/abhisek/quickmath/internal/screens/summary"
	"github.com/abhisek/quickmath/internal/session"
	"github.com/abhisek/quickmath/internal/settings"
	"github.com/abhisek/quickmath/internal/ui/components"
	"github.com/abhisek/quickmath/internal/ui/layout"
	"github.com/abhisek/quickmath/internal/ui/theme"
)

// Deps are the collaborators a quiz needs. The same Deps build every
// replay.
type Deps struct {
	Settings settings.Settings

	Generator   problemgen.Generator
	Distractors *problemgen.OptionGenerator
	Validators  []problemgen.Validator
	Logger      *slog.Logger

	// FeedbackDelay is passed to the session. Zero uses its default.
	FeedbackDelay time.Duration
}

const tickInterval = time.Second

// QuizScreen runs a session and renders its events.
type QuizScreen struct {
	deps  Deps
	sess  *session.Session
	sched *teaScheduler
	log   *slog.Logger

	question problemgen.Question
	choices  components.MultiChoice
	input    components.AnswerInput

	remaining int
	total     int

	feedback    string
	feedbackOK  bool
	errMsg      string
	confirmQuit bool

	stopTick clock.Cancel
	ended    bool
	next     screen.Screen
	navSent  bool
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
	_ screen.BackHandler     = (*QuizScreen)(nil)
	_ session.Listener       = (*QuizScreen)(nil)
)

// New creates a QuizScreen. The session starts when the router calls Init.
func New(deps Deps) *QuizScreen {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	q := &QuizScreen{
		deps:    deps,
		sched:   newTeaScheduler(),
		log:     log,
		input:   components.NewAnswerInput("type or pick an answer", 9),
		choices: components.NewMultiChoice(nil),
	}

	sess, err := session.New(session.Options{
		Generator:     deps.Generator,
		Distractors:   deps.Distractors,
		Validators:    deps.Validators,
		Scheduler:     q.sched,
		Listener:      q,
		Logger:        log,
		FeedbackDelay: deps.FeedbackDelay,
	})
	if err != nil {
		q.errMsg = err.Error()
		q.ended = true
		return q
	}
	q.sess = sess
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.sess == nil {
		return nil
	}
	if err := q.sess.Start(q.deps.Settings); err != nil {
		q.log.Error("quiz could not start", "error", err)
	}
	if !q.ended {
		q.scheduleTick()
	}
	return tea.Batch(q.input.Init(), q.flush())
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the remaining time in the header.
func (q *QuizScreen) Status() string {
	if q.sess == nil {
		return ""
	}
	return "⏱ " + components.FormatClock(q.remaining) + "  "
}

// HandlesBack keeps esc from popping the screen mid-quiz; it opens the
// quit confirmation instead.
func (q *QuizScreen) HandlesBack() bool {
	return !q.ended
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.ended:
		return nil
	case q.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case q.sess.State().Answered:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type"},
		{Key: "↑↓", Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduledMsg:
		if msg.owner == q.sched {
			q.sched.fire(msg.id)
		}
		return q, q.flush()

	case tea.KeyPressMsg:
		cmd := q.handleKey(msg)
		return q, tea.Batch(cmd, q.flush())
	}

	if q.ended {
		return q, nil
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if q.ended {
		return nil
	}

	key := msg.String()
	if q.confirmQuit {
		switch key {
		case "y", "Y":
			q.confirmQuit = false
			q.sess.Stop()
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return nil
	}

	if key == "esc" {
		q.confirmQuit = true
		return nil
	}

	// Input is ignored while the answer is on display.
	if q.sess.State().Answered {
		return nil
	}

	switch key {
	case "up", "down", "k", "j":
		var cmd tea.Cmd
		q.choices, cmd = q.choices.Update(msg)
		return cmd
	case "enter":
		q.submit()
		return nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return cmd
}

// submit sends the typed answer, or the highlighted option when nothing
// was typed.
func (q *QuizScreen) submit() {
	var err error
	if text := strings.TrimSpace(q.input.Value()); text != "" {
		err = q.sess.SubmitText(text)
	} else {
		err = q.sess.SubmitAnswer(q.choices.Value())
	}

	switch {
	case err == nil:
		q.errMsg = ""
		q.input.Reset()
	case errors.Is(err, session.ErrInvalidInput):
		q.errMsg = "Enter a whole number greater than zero"
		q.input.Reset()
	default:
		q.log.Debug("answer ignored", "error", err)
	}
}

func (q *QuizScreen) scheduleTick() {
	q.stopTick = q.sched.AfterFunc(tickInterval, q.tick)
}

func (q *QuizScreen) tick() {
	if err := q.sess.Tick(); err != nil {
		return
	}
	if !q.ended {
		q.scheduleTick()
	}
}

// flush collects pending timer commands and, once the session has ended,
// the navigation to the results.
func (q *QuizScreen) flush() tea.Cmd {
	cmds := q.sched.flush()
	if q.next != nil && !q.navSent {
		q.navSent = true
		next := q.next
		cmds = append(cmds, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} })
	}
	return tea.Batch(cmds...)
}

// QuestionReady implements session.Listener.
func (q *QuizScreen) QuestionReady(question problemgen.Question, options problemgen.OptionSet) {
	q.question = question
	q.choices = components.NewMultiChoice(options)
	q.input.Reset()
	q.feedback = ""
	q.errMsg = ""
}

// AnswerResolved implements session.Listener.
func (q *QuizScreen) AnswerResolved(picked, correct int, isCorrect bool) {
	q.choices.Reveal(picked, correct)
	q.feedbackOK = isCorrect
	if isCorrect {
		q.feedback = "Correct!"
	} else {
		q.feedback = fmt.Sprintf("Not quite. %s = %d", q.question.Text(), correct)
	}
}

// TimeUpdated implements session.Listener.
func (q *QuizScreen) TimeUpdated(remaining int) {
	if remaining > q.total {
		q.total = remaining
	}
	q.remaining = remaining
}

// SessionEnded implements session.Listener.
func (q *QuizScreen) SessionEnded(stats session.Stats) {
	q.ended = true
	q.confirmQuit = false
	if q.stopTick != nil {
		q.stopTick()
	}
	deps := q.deps
	q.next = summary.New(stats, func() screen.Screen { return New(deps) })
}

func (q *QuizScreen) View(width, height int) string {
	if q.sess == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(q.errMsg))
	}
	if q.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	st := q.sess.State()
	cw := components.ContentWidth(width)

	var b strings.Builder

	info := theme.Muted.Render(fmt.Sprintf("Question %d/%d   Score %d   %s",
		min(st.Index+1, st.Settings.NumQuestions), st.Settings.NumQuestions,
		st.Score, st.Settings.Difficulty.Label()))
	b.WriteString(info)
	b.WriteString("\n\n")

	b.WriteString(components.TimeBar{Remaining: q.remaining, Total: q.total, Width: cw}.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Question.Width(cw).Render(q.question.Text() + " = ?"))
	b.WriteString("\n\n")

	b.WriteString(q.choices.View())
	b.WriteString("\n")

	if !st.Answered {
		b.WriteString(q.input.View())
	}
	b.WriteString("\n\n")

	switch {
	case q.feedback != "" && q.feedbackOK:
		b.WriteString(theme.Correct.Render(q.feedback))
	case q.feedback != "":
		b.WriteString(theme.Incorrect.Render(q.feedback))
	case q.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(q.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.
		BorderForeground(theme.Accent).
		Align(lipgloss.Center).
		Render(theme.Body.Bold(true).Render("End this quiz?") + "\n\n" +
			theme.Hint.Render("Your score so far will be shown.") + "\n\n" +
			theme.Muted.Render("[Y] End quiz   [N] Keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
