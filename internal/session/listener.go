package session

import "github.com/abhisek/quickmath/internal/problemgen"

// Listener receives the events a session emits. Calls are made
// synchronously from inside the session's entry points.
type Listener interface {
	QuestionReady(q problemgen.Question, options problemgen.OptionSet)
	AnswerResolved(picked, correct int, isCorrect bool)
	TimeUpdated(remaining int)
	SessionEnded(stats Stats)
}

// Funcs adapts optional closures to a Listener. Nil fields are skipped.
type Funcs struct {
	OnQuestionReady  func(q problemgen.Question, options problemgen.OptionSet)
	OnAnswerResolved func(picked, correct int, isCorrect bool)
	OnTimeUpdated    func(remaining int)
	OnSessionEnded   func(stats Stats)
}

var _ Listener = Funcs{}

func (f Funcs) QuestionReady(q problemgen.Question, options problemgen.OptionSet) {
	if f.OnQuestionReady != nil {
		f.OnQuestionReady(q, options)
	}
}

func (f Funcs) AnswerResolved(picked, correct int, isCorrect bool) {
	if f.OnAnswerResolved != nil {
		f.OnAnswerResolved(picked, correct, isCorrect)
	}
}

func (f Funcs) TimeUpdated(remaining int) {
	if f.OnTimeUpdated != nil {
		f.OnTimeUpdated(remaining)
	}
}

func (f Funcs) SessionEnded(stats Stats) {
	if f.OnSessionEnded != nil {
		f.OnSessionEnded(stats)
	}
}
