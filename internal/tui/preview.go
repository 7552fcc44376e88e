// Package tui implements the interactive theme preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vellumapp/vellum/internal/color"
	"github.com/vellumapp/vellum/internal/manager"
	"github.com/vellumapp/vellum/internal/theme"
)

const subscriberID = "tui-preview"

// Run launches the theme preview against a live manager. Selections made
// in the preview go through the manager, so they persist and notify any
// other subscribers.
func Run(mgr *manager.Manager) error {
	m := initialModel(mgr)

	if err := mgr.Subscribe(subscriberID, func(c manager.Change) {
		select {
		case m.changes <- c:
		default:
		}
	}); err != nil {
		return err
	}
	defer mgr.Unsubscribe(subscriberID)

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	mgr     *manager.Manager
	themes  []theme.Theme
	cursor  int
	current theme.Theme
	width   int
	changes chan manager.Change
}

func initialModel(mgr *manager.Manager) model {
	m := model{
		mgr:     mgr,
		themes:  mgr.AllThemes(),
		current: mgr.CurrentTheme(),
		changes: make(chan manager.Change, 16),
	}
	for i, t := range m.themes {
		if t.ID == m.current.ID {
			m.cursor = i
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return <-m.changes
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.mgr.Select(m.themes[m.cursor])
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case manager.Change:
		if msg.Kind == manager.ChangeTheme {
			m.current = msg.Theme
		}
		m.themes = m.mgr.AllThemes()
		if m.cursor >= len(m.themes) {
			m.cursor = len(m.themes) - 1
		}
		return m, m.waitForChange()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(m.current.Colors.Accent.Hex()))
	b.WriteString(title.Render("Vellum themes"))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		b.WriteString(m.themeLine(i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.previewCard())
	b.WriteString("\n\n")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.current.Colors.Secondary.Hex()))
	b.WriteString(muted.Render("up/down move | enter select | q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) themeLine(i int, t theme.Theme) string {
	marker := "  "
	if i == m.cursor {
		marker = "> "
	}

	active := " "
	if t.ID == m.current.ID {
		active = "*"
	}

	swatches := swatchRow(t.Colors)
	ratio := color.ContrastRatio(t.Colors.Text, t.Colors.Background)
	grade := color.Level(ratio)

	line := fmt.Sprintf("%s%s %-14s %s %5.2f:1 %s", marker, active, t.Name, swatches, ratio, grade)
	if i == m.cursor {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

func (m model) previewCard() string {
	c := m.current.Colors
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text.Hex())).
		Background(lipgloss.Color(c.Background.Hex())).
		Padding(1, 2)

	accent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent.Hex())).
		Background(lipgloss.Color(c.Background.Hex()))

	secondary := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Secondary.Hex())).
		Background(lipgloss.Color(c.Background.Hex()))

	text := fmt.Sprintf("%s\n%s %s",
		"The quick brown fox jumps over the lazy dog.",
		accent.Render("Chapter 12"),
		secondary.Render("page 214 of 310"))

	return body.Render(text)
}

func swatchRow(p theme.Palette) string {
	var b strings.Builder
	for _, c := range []color.Color{p.Background, p.Text, p.Accent, p.Secondary, p.Surface} {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
	}
	return b.String()
}
