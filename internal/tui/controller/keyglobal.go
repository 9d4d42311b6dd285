package controller

import (
	"strings"
	"time"

	"coursectl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses while the table has focus or an
// overlay is open.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case "y":
			if err := clipboardWrite(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(controllerSubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, 3*time.Second)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Help):
			m.CurrentAppMode = model.ModeMain
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	p := m.Panel

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ShowCourses):
		return m, m.SelectTab(model.TabCourses)

	case key.Matches(keyMsg, m.Keys.ShowParticipants):
		return m, m.SelectTab(model.TabParticipants)

	case key.Matches(keyMsg, m.Keys.Tab):
		return m, p.FocusNext()

	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, p.FocusPrev()

	case key.Matches(keyMsg, m.Keys.NextTab):
		return m, m.SelectTab(nextTab(m.ActiveTab, 1))

	case key.Matches(keyMsg, m.Keys.PrevTab):
		return m, m.SelectTab(nextTab(m.ActiveTab, -1))

	case key.Matches(keyMsg, m.Keys.Refresh):
		if !p.CanRefresh() {
			return m, nil
		}
		return m, p.Load()

	case key.Matches(keyMsg, m.Keys.Delete):
		id := p.SelectedID()
		if id == "" || !p.CanRemove() {
			return m, nil
		}
		LogInfo(controllerSubsystem, "User requested delete of %s %s", p.Singular(), id)
		return m, p.Remove(id)

	case key.Matches(keyMsg, m.Keys.New):
		return m, p.FocusForm()

	case key.Matches(keyMsg, m.Keys.Lookup):
		return m, p.FocusLookup()

	case key.Matches(keyMsg, m.Keys.ClearLookup):
		p.ClearLookup()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Esc):
		m.SetError("")
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopyID):
		id := p.SelectedID()
		if id == "" {
			return m, nil
		}
		if err := clipboardWrite(id); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy id")
			return m, m.SetStatusMessage("Copy id failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Copied id "+id, model.StatusBarSuccess, 3*time.Second)

	case key.Matches(keyMsg, m.Keys.CopyLookup):
		js, ok := p.LookupJSON()
		if !ok {
			return m, nil
		}
		if err := clipboardWrite(js); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy lookup result")
			return m, m.SetStatusMessage("Copy lookup result failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Lookup result copied to clipboard", model.StatusBarSuccess, 3*time.Second)
	}

	// Row navigation.
	return m, p.UpdateFocused(keyMsg)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye."
	return m, tea.Quit
}

// nextTab returns the tab delta steps away from current, wrapping around.
func nextTab(current model.Tab, delta int) model.Tab {
	n := len(model.Tabs)
	for i, t := range model.Tabs {
		if t == current {
			return model.Tabs[((i+delta)%n+n)%n]
		}
	}
	return model.Tabs[0]
}
