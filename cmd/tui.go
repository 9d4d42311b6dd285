package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Long: `Starts the interactive terminal UI. This is the same as running coursectl
without a subcommand.

Press ? inside the UI for the list of key bindings.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
}

// runTUI is shared by the root command and the tui subcommand.
func runTUI(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
