package session

import (
	"github.com/abhisek/quickmath/internal/settings"
)

// RatingBand buckets a score percentage.
type RatingBand int

const (
	RatingLow  RatingBand = iota // 54% or less
	RatingMid                    // Above 54% and below 75%
	RatingHigh                   // 75% or more
)

// Rate returns the band for a score percentage.
func Rate(percentage float64) RatingBand {
	switch {
	case percentage <= 54:
		return RatingLow
	case percentage < 75:
		return RatingMid
	default:
		return RatingHigh
	}
}

func (r RatingBand) String() string {
	switch r {
	case RatingLow:
		return "low"
	case RatingMid:
		return "mid"
	case RatingHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Message is the closing line shown with the results.
func (r RatingBand) Message() string {
	switch r {
	case RatingHigh:
		return "You are a genius"
	case RatingMid:
		return "You can do better"
	default:
		return "Keep practicing"
	}
}

// Stats holds the data displayed on the summary screen.
type Stats struct {
	SessionID  string
	Difficulty settings.Difficulty
	Reason     EndReason

	Score        int
	NumQuestions int
	Answered     int

	// ScorePercentage is measured against NumQuestions, so questions left
	// unanswered when time runs out count as wrong.
	ScorePercentage float64

	ElapsedSeconds            int
	AverageSecondsPerQuestion float64
	Rating                    RatingBand
}

// Summarize computes Stats from a session snapshot.
func Summarize(state State) Stats {
	st := Stats{
		SessionID:    state.SessionID,
		Difficulty:   state.Settings.Difficulty,
		Reason:       state.Reason,
		Score:        state.Score,
		NumQuestions: state.Settings.NumQuestions,
		Answered:     state.Index,
	}

	if st.NumQuestions > 0 {
		st.ScorePercentage = 100 * float64(st.Score) / float64(st.NumQuestions)
	}

	st.ElapsedSeconds = state.Settings.TimeLimitSeconds() - state.Remaining
	if st.ElapsedSeconds < 0 {
		st.ElapsedSeconds = 0
	}
	if state.Index > 0 {
		st.AverageSecondsPerQuestion = float64(st.ElapsedSeconds) / float64(state.Index)
	}

	st.Rating = Rate(st.ScorePercentage)
	return st
}
