package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepoSlug = "coursectl/coursectl"

// release is the part of *selfupdate.Release the command relies on.
type release interface {
	Version() string
	LessOrEqual(other string) bool
}

// For mocking in tests
var detectLatest = func(ctx context.Context, slug string) (release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil || !found {
		return nil, found, err
	}
	return latest, true, nil
}

var applyUpdate = func(ctx context.Context, r release) (string, error) {
	latest, ok := r.(*selfupdate.Release)
	if !ok {
		return "", fmt.Errorf("unexpected release type %T", r)
	}
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return "", fmt.Errorf("could not locate executable path: %w", err)
	}
	return exe, selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe)
}

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update coursectl to the latest version",
		Long: `Checks for the latest release of coursectl on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	ctx := context.Background()
	var out io.Writer = os.Stdout
	if cmd != nil {
		out = cmd.OutOrStdout()
		if cmd.Context() != nil {
			ctx = cmd.Context()
		}
	}

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintln(out, "Checking for updates...")

	latest, found, err := detectLatest(ctx, githubRepoSlug)
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", githubRepoSlug)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s\n", latest.Version())

	exe, err := applyUpdate(ctx, latest)
	if err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated %s to version %s\n", exe, latest.Version())
	return nil
}
