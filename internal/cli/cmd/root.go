// Package cmd provides Cobra CLI commands for toggley.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/cli"
	"github.com/bnema/toggley/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "toggley",
		Short: "Switch the browser between light and dark themes",
		Long: `Toggley - a light/dark theme switcher for your browser.

A small daemon talks to the browser through a WebExtension shim and
switches the enabled theme between your preferred light and dark pair.

Features:
  - One-click toggle from the toolbar or the command line
  - Time based schedule that follows your day
  - System mode that lets the browser follow the desktop
  - Toolbar icon drawn in the colors of the active theme

Start the daemon with 'toggley serve', then use the other subcommands
to toggle, inspect or configure it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete", "resolve":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
