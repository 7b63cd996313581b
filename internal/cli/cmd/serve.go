package cmd

import (
	"fmt"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/toggley/internal/bootstrap"
	"github.com/bnema/toggley/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the toggley daemon",
	Long: `Run the daemon in the foreground.

The daemon serves the control API used by the other subcommands and the
WebSocket endpoint the browser shim connects to. It stops on SIGINT or
SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), unix.SIGINT, unix.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "daemon")

	daemon, err := bootstrap.NewDaemon(ctx, a.Manager)
	if err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}
	defer func() {
		if cerr := daemon.Close(); cerr != nil {
			logging.FromContext(ctx).Warn().Err(cerr).Msg("failed to close database")
		}
	}()

	if err := daemon.Run(ctx); err != nil {
		return fmt.Errorf("daemon stopped: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("toggley daemon stopped")
	return nil
}
