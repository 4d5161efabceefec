package tui

import (
	"conch/internal/editor"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Scrollback.Width = msg.Width
		m.Scrollback.Height = msg.Height - 1 // minus footer
		if m.Scrollback.Height < 1 {
			m.Scrollback.Height = 1
		}
		m.Ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		// The console blocks here while a command runs; no other input is
		// processed until it exits.
		if m.Console.Step(TranslateKey(msg)) {
			return m, tea.Quit
		}
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.Scrollback, cmd = m.Scrollback.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refresh pushes the current frame into the scrollback and pins it to the
// bottom.
func (m *AppModel) refresh() {
	if !m.Ready {
		return
	}
	m.Scrollback.SetContent(wrap(m.Console.Frame().String(), m.Scrollback.Width))
	m.Scrollback.GotoBottom()
}

// TranslateKey maps a bubbletea key message onto editor events. Pasted or
// buffered input can carry several runes, each becoming its own event.
func TranslateKey(msg tea.KeyMsg) []editor.Event {
	mod := editor.ModNone
	if msg.Alt {
		mod |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []editor.Event{editor.Quit()}
	case tea.KeyEsc:
		return []editor.Event{named(editor.KeyDown(editor.KeyEscape, mod), msg)}
	case tea.KeyEnter:
		return []editor.Event{named(editor.KeyDown(editor.KeyEnter, mod), msg)}
	case tea.KeyBackspace:
		return []editor.Event{named(editor.KeyDown(editor.KeyBackspace, mod), msg)}
	case tea.KeyCtrlW:
		return []editor.Event{named(editor.KeyDown(editor.KeyBackspace, mod|editor.ModCtrl), msg)}
	case tea.KeySpace:
		return []editor.Event{named(editor.KeyDown(editor.KeySpace, mod), msg)}
	case tea.KeyRunes:
		events := make([]editor.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev := editor.RuneEvent(r)
			ev.Mod |= mod
			events = append(events, ev)
		}
		return events
	}

	return []editor.Event{{Kind: editor.EventKey, Key: editor.KeyUnknown, Name: msg.String()}}
}

func named(ev editor.Event, msg tea.KeyMsg) editor.Event {
	ev.Name = msg.String()
	return ev
}
