package controller

import (
	"fmt"

	"coursectl/internal/tui/model"
	"coursectl/internal/tui/view"
	"coursectl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the central message routing function for the TUI. It directs
// every Bubble Tea message to its handler based on the message type and
// the current application mode.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.CurrentAppMode == model.ModeMain && m.Panel.InputFocused() {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.PanelMsg:
		cmds = append(cmds, m.ApplyPanelMsg(msg))

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.Spinner, spinCmd = m.Spinner.Update(msg)
		return m, spinCmd

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(msg)
			cmds = append(cmds, vpCmd)
		}

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		LogDebug(m, controllerDispatchSubsystem, "Unhandled msg type: %T", msg)
	}

	if m.ActivityLogDirty || m.LogViewportLastWidth != m.LogViewport.Width {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode == model.ModeLogOverlay && m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleWindowSizeMsg records the terminal size and re-lays out the panel.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.LayoutPanel()
	return m, nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// INFO and above always reach the activity log; DEBUG only in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
