package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"conch/internal/console"
	"conch/internal/model"
)

var (
	screenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")). // Light grey on the terminal background
			Background(lipgloss.Color("236"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m AppModel) View() string {
	if !m.Ready {
		return m.Console.Frame().String()
	}

	body := screenStyle.
		Width(m.WindowSize.Width).
		Height(m.Scrollback.Height).
		Render(m.Scrollback.View())
	footer := footerStyle.Render(fmt.Sprintf("conch %s  enter: run  shift/alt+backspace, ctrl+w: delete word  esc: quit", model.Version))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// wrap breaks text to fit width columns. A non-positive width leaves it as is.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// Run starts the full-screen program for c and blocks until the session ends.
// The terminal is restored before Run returns.
func Run(c *console.Console, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(InitialModel(c), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
