package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmath/internal/ui/theme"
)

// lowTimeSeconds is when the countdown bar turns red.
const lowTimeSeconds = 10

// TimeBar shows the countdown as a clock and a shrinking bar.
type TimeBar struct {
	Remaining int
	Total     int
	Width     int
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (b TimeBar) View() string {
	clock := FormatClock(b.Remaining)
	low := b.Remaining <= lowTimeSeconds

	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if low {
		label = theme.Incorrect
	}
	result := label.Render(clock) + "  "

	barWidth := max(b.Width-lipgloss.Width(result), 4)

	filled := 0
	if b.Total > 0 {
		filled = barWidth * b.Remaining / b.Total
	}
	filled = min(max(filled, 0), barWidth)

	fill := theme.TimeFilled
	if low {
		fill = theme.TimeLow
	}
	return result +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.TimeEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
