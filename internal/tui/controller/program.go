package controller

import (
	"coursectl/internal/tui/model"
	"coursectl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the course/participant shell.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m := model.InitializeModel(cfg, logChannel)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen()), nil
}
