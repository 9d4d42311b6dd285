package model

import (
	"coursectl/internal/api"
	"coursectl/internal/tui/design"
	"coursectl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InitializeModel builds the shell and mounts the panel for the default tab.
// The mount's initial load is issued by Init.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) *Model {
	client := cfg.Client
	if client == nil {
		client = api.NewClient(cfg.APIBase)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	m := &Model{
		CurrentAppMode:   ModeMain,
		DebugMode:        cfg.DebugMode,
		ActiveTab:        cfg.DefaultTab,
		APIBase:          client.BaseURL(),
		Client:           client,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       logChannel,
	}
	m.newPanel = m.defaultPanel
	m.mount(cfg.DefaultTab)
	return m
}

func (m *Model) defaultPanel(tab Tab, epoch int, report func(string)) ResourcePanel {
	if tab == TabParticipants {
		return NewParticipantPanel(m.Client, epoch, report)
	}
	return NewCoursePanel(m.Client, epoch, report)
}

// Init starts the mounted panel's load, the spinner and the log listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Panel.Load(), m.Spinner.Tick}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	return tea.Batch(cmds...)
}

// ListenForLogEntriesCmd waits for the next log entry. It yields nil once
// the channel is closed, which ends the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
