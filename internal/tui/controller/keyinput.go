package controller

import (
	"coursectl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while a form or lookup input
// has focus. Tab cycles focus, Enter submits the focused form and Esc
// returns to the table. Everything else is typed into the input.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	p := m.Panel

	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, p.FocusNext()

	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, p.FocusPrev()

	case key.Matches(keyMsg, m.Keys.Esc):
		p.FocusTable()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		if p.LookupFocused() {
			return m, p.Lookup()
		}
		return m, p.Create()

	case keyMsg.String() == "ctrl+r":
		if p.CanRefresh() {
			return m, p.Load()
		}
		return m, nil
	}

	return m, p.UpdateFocused(keyMsg)
}
