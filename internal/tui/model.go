package tui

import (
	"conch/internal/console"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state. The console itself is shared and mutated in
// place; bubbletea only ever runs one Update at a time.
type AppModel struct {
	// Data
	Console *console.Console

	// UI State
	WindowSize tea.WindowSizeMsg
	Ready      bool

	// Components
	Scrollback viewport.Model
}

// InitialModel returns the initial state for c.
func InitialModel(c *console.Console) AppModel {
	return AppModel{
		Console:    c,
		Scrollback: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}
