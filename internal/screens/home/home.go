// Package home is the start screen: the current settings and a menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmath/internal/router"
	"github.com/abhisek/quickmath/internal/screen"
	"github.com/abhisek/quickmath/internal/screens/quiz"
	"github.com/abhisek/quickmath/internal/settings"
	"github.com/abhisek/quickmath/internal/ui/components"
	"github.com/abhisek/quickmath/internal/ui/layout"
	"github.com/abhisek/quickmath/internal/ui/theme"
)

const arcadeTitleFull = `╔═╗ ╦ ╦╦╔═╗╦╔═  ╔╦╗╔═╗╔╦╗╦ ╦
║═╬╗║ ║║║  ╠╩╗  ║║║╠═╣ ║ ╠═╣
╚═╝╚╚═╝╩╚═╝╩ ╩  ╩ ╩╩ ╩ ╩ ╩ ╩`

const arcadeTitleCompact = "Q U I C K · M A T H"

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu     components.Menu
	settings settings.Settings
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen that starts quizzes built from deps.
func New(deps quiz.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(deps)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	normalized, _ := settings.Normalize(deps.Settings)
	return &HomeScreen{
		menu:     components.NewMenu(items),
		settings: normalized,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back the header and footer.
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			components.RenderMascot(components.MascotIdle)))
	}
	sections = append(sections, renderSettings(h.settings, cw, compact))
	sections = append(sections, components.ArcadeButtons(h.menu.Labels(), h.menu.Selected, cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderTitle(cw int, compact bool) string {
	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

// renderSettings shows the settings the next quiz will use.
func renderSettings(s settings.Settings, cw int, compact bool) string {
	val := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	clock := components.FormatClock(s.TimeLimitSeconds())
	var line string
	if compact {
		line = fmt.Sprintf("%s  %s  %s  %s",
			val.Render(fmt.Sprintf("%dQ", s.NumQuestions)),
			val.Render(fmt.Sprintf("%d opts", s.NumOptions)),
			val.Render(clock),
			val.Render(s.Difficulty.Label()))
	} else {
		line = fmt.Sprintf("%s %s   %s %s   %s %s   %s",
			val.Render(fmt.Sprint(s.NumQuestions)), dim.Render("QUESTIONS"),
			val.Render(fmt.Sprint(s.NumOptions)), dim.Render("OPTIONS"),
			val.Render(clock), dim.Render("TIME"),
			val.Render(strings.ToUpper(s.Difficulty.Label())))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}
