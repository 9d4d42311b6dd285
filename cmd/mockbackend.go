package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursectl/internal/mockbackend"
	"coursectl/pkg/logging"

	"github.com/spf13/cobra"
)

const mockBackendShutdownTimeout = 5 * time.Second

func newMockBackendCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "mock-backend",
		Short: "Serve an in-memory course and participant backend",
		Long: `Serves the course and participant REST API from memory. State is lost
when the process exits.

Point the UI at it with:
  coursectl --api-base http://localhost:5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if globalFlags.debug {
				level = logging.LevelDebug
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serveMockBackend(ctx, ln)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":5000", "Listen address")
	return cmd
}

// serveMockBackend serves on ln until ctx is cancelled, then shuts down.
func serveMockBackend(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           mockbackend.NewServer(mockbackend.NewStore()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logging.Info("MockBackend", "Serving mock backend on %s", ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("MockBackend", "Shutting down mock backend")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), mockBackendShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down mock backend: %w", err)
	}
	return nil
}
