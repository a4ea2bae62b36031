// Package summary shows the results of a finished quiz.
package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmath/internal/router"
	"github.com/abhisek/quickmath/internal/screen"
	"github.com/abhisek/quickmath/internal/session"
	"github.com/abhisek/quickmath/internal/ui/components"
	"github.com/abhisek/quickmath/internal/ui/layout"
	"github.com/abhisek/quickmath/internal/ui/theme"
)

// SummaryScreen displays the results of one session.
type SummaryScreen struct {
	stats  session.Stats
	replay func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. replay builds a fresh quiz for "play again";
// when nil, enter returns home like esc.
func New(stats session.Stats, replay func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{stats: stats, replay: replay}
}

// Stats returns the results being shown.
func (s *SummaryScreen) Stats() session.Stats {
	return s.stats
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.replay == nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "r":
		if s.replay != nil {
			next := s.replay()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center, str)
	}

	var sections []string

	if !layout.IsCompact(width, height+8) {
		sections = append(sections, center(components.RenderMascot(mascotFor(st.Rating))))
	}

	sections = append(sections, center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(reasonHeadline(st.Reason))))

	score := lipgloss.NewStyle().
		Foreground(ratingColor(st.Rating)).
		Bold(true).
		Render(fmt.Sprintf("%d / %d   %.0f%%", st.Score, st.NumQuestions, st.ScorePercentage))
	sections = append(sections, center(score))

	rows := []string{
		statRow("Answered", fmt.Sprintf("%d of %d", st.Answered, st.NumQuestions)),
		statRow("Time used", components.FormatClock(st.ElapsedSeconds)),
		statRow("Per question", perQuestion(st)),
		statRow("Difficulty", st.Difficulty.Label()),
	}
	sections = append(sections, components.ArcadeCard(strings.Join(rows, "\n"), cw))

	sections = append(sections, center(lipgloss.NewStyle().
		Foreground(ratingColor(st.Rating)).
		Italic(true).
		Render(st.Rating.Message())))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func statRow(label, value string) string {
	return fmt.Sprintf("%s  %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(14).Render(label),
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value))
}

func perQuestion(st session.Stats) string {
	if st.Answered == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", st.AverageSecondsPerQuestion)
}

func reasonHeadline(r session.EndReason) string {
	switch r {
	case session.EndCompleted:
		return "Quiz complete!"
	case session.EndTimeExpired:
		return "Time's up!"
	case session.EndQuit:
		return "Quiz stopped"
	case session.EndAborted:
		return "Could not generate a question"
	default:
		return "Quiz over"
	}
}

func ratingColor(r session.RatingBand) color.Color {
	switch r {
	case session.RatingHigh:
		return theme.Success
	case session.RatingMid:
		return theme.ArcadeYellow
	default:
		return theme.Accent
	}
}

func mascotFor(r session.RatingBand) components.MascotVariant {
	switch r {
	case session.RatingHigh:
		return components.MascotCelebrating
	case session.RatingLow:
		return components.MascotAlert
	default:
		return components.MascotIdle
	}
}
