// Package cli wires the command line front end: config, logger, theme and
// the control API client shared by every command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/build"
	"github.com/bnema/toggley/internal/infrastructure/api"
	"github.com/bnema/toggley/internal/infrastructure/config"
	"github.com/bnema/toggley/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Client    *api.Client

	ctx context.Context
}

// NewApp loads the configuration and builds the shared dependencies.
// A broken config file is reported, not papered over with defaults.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(lipgloss.HasDarkBackground()),
		Client:  api.NewClient(cfg.API.ListenAddr),
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Interactive reports whether stdin and stdout are both terminals.
func (a *App) Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
