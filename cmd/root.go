package cmd

import (
	"fmt"
	"os"

	"coursectl/internal/app"

	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every subcommand.
var globalFlags struct {
	apiBase    string
	debug      bool
	configPath string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coursectl",
	Short: "Terminal front-end for the course and participant API",
	Long: `coursectl is an interactive test harness for the course and participant
REST backend. Without a subcommand it starts the terminal UI, where courses
and participants can be listed, created, looked up and deleted.

The same operations are available non-interactively through the 'courses'
and 'participants' subcommands, and 'mock-backend' serves an in-memory
backend for local experiments.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. backend failures)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "coursectl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func bindGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&globalFlags.apiBase, "api-base", "", "Backend base URL (overrides config and $COURSECTL_API_BASE)")
	cmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&globalFlags.configPath, "config", "", "Path to a config file (default: layered lookup)")
}

// newApplication bootstraps configuration and the backend client from the
// global flags.
func newApplication() (*app.Application, error) {
	cfg := app.NewConfig(globalFlags.debug, globalFlags.configPath, globalFlags.apiBase)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func init() {
	bindGlobalFlags(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newCoursesCmd())
	rootCmd.AddCommand(newParticipantsCmd())
	rootCmd.AddCommand(newMockBackendCmd())
}
