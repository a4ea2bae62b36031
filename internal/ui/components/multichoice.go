package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmath/internal/ui/theme"
)

// MultiChoice is a vertical list of numeric options with a cursor. Once
// revealed it highlights the correct option and the one picked.
type MultiChoice struct {
	Options  []int
	Selected int

	Revealed     bool
	CorrectIndex int
	ChosenIndex  int
}

// NewMultiChoice creates a multiple-choice list with the cursor on the
// first option.
func NewMultiChoice(options []int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Update moves the cursor. It ignores input once revealed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}
	return m, nil
}

// Value returns the option under the cursor, or 0 when empty.
func (m MultiChoice) Value() int {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return 0
	}
	return m.Options[m.Selected]
}

// Reveal marks the correct option and the picked value. A picked value
// that is not among the options only reveals the correct one.
func (m *MultiChoice) Reveal(picked, correct int) {
	m.Revealed = true
	m.ChosenIndex = slices.Index(m.Options, picked)
	m.CorrectIndex = slices.Index(m.Options, correct)
}

func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d", prefix, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.ChosenIndex:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
