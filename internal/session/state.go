package session

import (
	"github.com/abhisek/quickmath/internal/problemgen"
	"github.com/abhisek/quickmath/internal/settings"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // Not started
	PhaseRunning              // Serving questions
	PhaseEnded                // Terminal until the next Start
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason records which terminal condition ended a session.
type EndReason int

const (
	EndNone        EndReason = iota
	EndCompleted             // Every question was answered
	EndTimeExpired           // The countdown reached zero
	EndQuit                  // The player stopped early
	EndAborted               // No valid question could be produced
)

func (r EndReason) String() string {
	switch r {
	case EndCompleted:
		return "completed"
	case EndTimeExpired:
		return "time-expired"
	case EndQuit:
		return "quit"
	case EndAborted:
		return "aborted"
	default:
		return "none"
	}
}

// State is a snapshot of a session.
type State struct {
	Settings  settings.Settings
	SessionID string
	Phase     Phase

	// Index counts completed questions. The question on screen is
	// number Index+1.
	Index int

	Score int

	// Answered is true once the current question has been answered, and
	// permanently after the session ends.
	Answered bool

	// Remaining is the countdown in whole seconds.
	Remaining int

	Terminated bool
	Reason     EndReason

	Question problemgen.Question
	Options  problemgen.OptionSet
}
