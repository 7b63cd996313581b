// Package bootstrap assembles and runs the toggley daemon.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/toggley/internal/application/dispatch"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/infrastructure/alarm"
	"github.com/bnema/toggley/internal/infrastructure/api"
	"github.com/bnema/toggley/internal/infrastructure/bridge"
	"github.com/bnema/toggley/internal/infrastructure/colorscheme"
	"github.com/bnema/toggley/internal/infrastructure/config"
	"github.com/bnema/toggley/internal/infrastructure/icon"
	"github.com/bnema/toggley/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/toggley/internal/logging"
)

// Daemon owns every long-lived component of the running service.
type Daemon struct {
	cfgMgr *config.Manager
	cfg    *config.Config
	db     *sql.DB

	events    *dispatch.Dispatcher
	bridge    *bridge.Server
	alarms    *alarm.Scheduler
	resolver  *colorscheme.Resolver
	directory *bridge.ThemeDirectory
	switchLog repository.SwitchLogRepository

	store    *usecase.PreferenceStore
	switcher *usecase.SwitchThemeUseCase
	icon     *usecase.RenderIconUseCase
	prefs    *usecase.ManagePreferencesUseCase
	poller   *usecase.SchedulePoller
	menu     *usecase.HandleMenuUseCase

	api       *api.Server
	startedAt time.Time
	timer     *StartupTimer
}

// NewDaemon builds the daemon from the loaded configuration. Nothing runs
// until Run is called.
func NewDaemon(ctx context.Context, mgr *config.Manager) (*Daemon, error) {
	timer := NewStartupTimer()
	cfg := mgr.Get()

	d := &Daemon{
		cfgMgr:    mgr,
		cfg:       cfg,
		events:    dispatch.New(),
		startedAt: time.Now(),
		timer:     timer,
	}

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	d.db = db
	timer.Mark("database")

	d.bridge = bridge.NewServer(ctx, d.events)
	d.bridge.SetCallTimeout(cfg.Bridge.CallTimeout)
	host := bridge.NewHost(d.bridge)
	d.directory = bridge.NewThemeDirectory(d.bridge)

	d.resolver = colorscheme.NewResolver(colorscheme.NewConfigAdapter(mgr.Get))
	d.resolver.RegisterDetector(bridge.NewDetector(d.bridge))
	d.resolver.RegisterDetector(colorscheme.NewTerminalDetector())
	d.resolver.RegisterDetector(colorscheme.NewEnvDetector())
	d.resolver.RegisterDetector(colorscheme.NewGsettingsDetector())
	timer.Mark("bridge")

	d.store = usecase.NewPreferenceStore(sqlite.NewSettingsRepository(db))
	d.switchLog = sqlite.NewSwitchLogRepository(db)
	d.alarms = alarm.NewScheduler(d.events)

	d.icon = usecase.NewRenderIconUseCase(usecase.RenderIconDeps{
		Store:         d.store,
		Directory:     d.directory,
		Palette:       bridge.NewPalette(d.bridge),
		Ambient:       d.resolver,
		Renderer:      icon.NewRenderer(),
		Surface:       host,
		Glyphs:        cfg.GlyphMapping(),
		SystemThemeID: cfg.Themes.SystemThemeID,
		Size:          cfg.Icon.Size,
	})
	d.switcher = usecase.NewSwitchThemeUseCase(usecase.SwitchThemeDeps{
		Store:          d.store,
		Directory:      d.directory,
		Ambient:        d.resolver,
		SchemeOverride: host,
		SwitchLog:      d.switchLog,
		Icon:           d.icon,
		SystemThemeID:  cfg.Themes.SystemThemeID,
	})
	d.prefs = usecase.NewManagePreferencesUseCase(d.store, d.directory, d.switcher, d.icon, cfg.Themes.SystemThemeID)
	d.poller = usecase.NewSchedulePoller(d.store, d.switcher, d.alarms, cfg.Schedule.PollInterval)
	d.menu = usecase.NewHandleMenuUseCase(d.store, d.poller, d.switcher, host, host, usecase.MenuPages{
		OptionsURL:  cfg.Pages.OptionsURL,
		ScheduleURL: cfg.Pages.ScheduleURL,
	})
	timer.Mark("usecases")

	if err := d.registerHandlers(); err != nil {
		_ = sqlite.Close(db)
		return nil, err
	}
	d.store.OnChange(d.postStorageChange)
	mgr.OnConfigChange(d.onConfigChange)

	d.api = api.NewServer(ctx, &backend{d: d})
	return d, nil
}

// Handler returns the HTTP handler serving the control API and the bridge.
func (d *Daemon) Handler() http.Handler {
	return d.api.Handler(map[string]http.Handler{
		"GET " + d.cfg.Bridge.Path: d.bridge,
	})
}

// Run serves until ctx is cancelled. The event loop, the HTTP listener and
// the config watcher share one errgroup; the first failure stops them all.
func (d *Daemon) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	d.alarms.Start(gctx)
	g.Go(func() error {
		return d.events.Run(gctx)
	})
	g.Go(func() error {
		return d.api.ListenAndServe(gctx, d.cfg.API.ListenAddr, d.Handler())
	})
	g.Go(func() error {
		<-gctx.Done()
		d.alarms.Stop()
		return d.bridge.Close()
	})

	if err := d.cfgMgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	if err := d.events.Post(dispatch.Event{Type: dispatch.EventStartup}); err != nil {
		return fmt.Errorf("failed to queue startup: %w", err)
	}
	d.timer.Mark("listen")
	d.timer.Log(ctx)

	log.Info().
		Str("api", d.cfg.API.ListenAddr).
		Str("bridge", d.cfg.Bridge.Path).
		Str("db", d.cfg.Database.Path).
		Msg("toggley daemon running")

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases the database.
func (d *Daemon) Close() error {
	if d.db == nil {
		return nil
	}
	return sqlite.Close(d.db)
}
