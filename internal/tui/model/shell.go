package model

import (
	"time"

	"coursectl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const tuiSubsystem = "TUI"

// Rows taken by the header, tab bar, section title, footer and status bar.
const shellChromeHeight = 7

// SelectTab mounts a fresh panel for tab and returns its initial load.
// Selecting the active tab does nothing.
func (m *Model) SelectTab(tab Tab) tea.Cmd {
	if tab == m.ActiveTab && m.Panel != nil {
		return nil
	}
	logging.Debug(tuiSubsystem, "Switching to %s tab", tab)
	m.mount(tab)
	return m.Panel.Load()
}

func (m *Model) mount(tab Tab) {
	m.epoch++
	m.ActiveTab = tab
	m.Panel = m.newPanel(tab, m.epoch, m.SetError)
	m.LayoutPanel()
}

// SetError replaces the error slot. An empty message dismisses it.
func (m *Model) SetError(message string) {
	if m.ErrorMessage != "" && message != "" {
		logging.Debug(tuiSubsystem, "Replacing unacknowledged error: %s", m.ErrorMessage)
	}
	wasShown := m.ErrorMessage != ""
	m.ErrorMessage = message
	if wasShown != (message != "") {
		m.LayoutPanel()
	}
}

// ApplyPanelMsg routes a completion to the mounted panel. A completion from
// a panel that has since been replaced leaves the mounted panel alone, but
// its failure still reaches the error slot.
func (m *Model) ApplyPanelMsg(msg PanelMsg) tea.Cmd {
	if m.Panel == nil || msg.Epoch() != m.Panel.Epoch() {
		if err := msg.Failure(); err != nil {
			logging.Error(tuiSubsystem, err, "Request from unmounted panel failed (epoch %d)", msg.Epoch())
			m.SetError(err.Error())
			return nil
		}
		logging.Debug(tuiSubsystem, "Dropping %T from unmounted panel (epoch %d)", msg, msg.Epoch())
		return nil
	}
	if summary := m.Panel.Apply(msg); summary != "" {
		return m.SetStatusMessage(summary, StatusBarSuccess, 3*time.Second)
	}
	return nil
}

// LayoutPanel hands the panel the space left under the shell chrome.
func (m *Model) LayoutPanel() {
	if m.Panel == nil || m.Width == 0 {
		return
	}
	h := m.Height - shellChromeHeight
	if m.ErrorMessage != "" {
		h -= 2
	}
	m.Panel.SetSize(m.Width, h)
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// AddRawLineToActivityLog adds a pre-formatted log entry to the activity
// log, keeping at most MaxActivityLogLines, and marks it dirty.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
