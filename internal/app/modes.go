package app

import (
	"context"

	"coursectl/internal/api"
	"coursectl/internal/tui/controller"
	"coursectl/internal/tui/design"
	"coursectl/internal/tui/model"
	"coursectl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, client *api.Client) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(levelFor(config.debugEnabled()))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(tuiConfig(config, client), logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	// Quit the program when the caller's context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(tea.Quit())
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

func tuiConfig(config *Config, client *api.Client) model.TUIConfig {
	return model.TUIConfig{
		APIBase:    config.Settings.APIBase,
		DefaultTab: model.ParseTab(config.Settings.UI.DefaultTab),
		DebugMode:  config.debugEnabled(),
		Client:     client,
	}
}
