// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/artpar/offerview/adapters/clock"
	"github.com/artpar/offerview/adapters/hasher"
	"github.com/artpar/offerview/adapters/memory"
	"github.com/artpar/offerview/adapters/metrics"
	"github.com/artpar/offerview/adapters/sqlite"
	"github.com/artpar/offerview/app"
	"github.com/artpar/offerview/config"
	"github.com/artpar/offerview/core/catalog"
	"github.com/artpar/offerview/core/registry"
	"github.com/artpar/offerview/core/render"
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/ports"
	"github.com/artpar/offerview/web"
)

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Config
	Registry   *app.RegistryService
	Renderer   *render.Renderer
	Metrics    *metrics.Collector
	HTTPServer *http.Server

	holder *config.Holder
	store  ports.KVStore
	db     *sqlite.DB
}

// New creates and initializes the application from a loaded config.
func New(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)

	logger.Info().Msg("initializing offerview")

	a := &App{
		Logger: logger,
		Config: cfg,
	}

	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		var reg *prometheus.Registry
		a.Metrics, reg = metrics.New()
		gatherer = reg
		logger.Info().Msg("prometheus metrics enabled")
	}

	if err := a.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	// Seed the registry: built-in defaults first, config seeds on top.
	cat := catalog.NewBuiltIn()
	seeds := catalog.DefaultDefinitions()
	reg := registry.New(cat, seeds, logger)
	for _, def := range cfg.Definitions {
		reg.Upsert(def)
	}

	var regOpts []app.RegistryOption
	if a.Metrics != nil {
		regOpts = append(regOpts, app.WithMetrics(a.Metrics))
	}
	a.Registry = app.NewRegistryService(reg, a.store, clock.Real{}, logger, regOpts...)

	// Apply persisted overrides over the seeds. Failures keep defaults.
	if err := a.Registry.Load(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("override load failed, serving built-in defaults")
	}

	var renderOpts []render.Option
	if a.Metrics != nil {
		m := a.Metrics
		renderOpts = append(renderOpts, render.WithSkipHook(func(id module.ID, reason render.SkipReason) {
			m.ModulesSkipped.WithLabelValues(string(id), string(reason)).Inc()
		}))
	}
	a.Renderer = render.New(cat, logger, renderOpts...)

	handler := web.NewHandler(web.Deps{
		Registry:       a.Registry,
		Renderer:       a.Renderer,
		Logger:         logger,
		Metrics:        a.Metrics,
		Hasher:         hasher.NewBcrypt(0),
		AdminTokenHash: []byte(cfg.Admin.TokenHash),
	})

	a.HTTPServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler.Router(gatherer, cfg.Metrics.Path),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return a, nil
}

// NewWithHotReload creates the application with config hot reload from a
// file. Config reloads re-seed the definition defaults; persisted
// overrides are re-applied on top so they keep winning for the
// categories they cover.
func NewWithHotReload(path string) (*App, error) {
	bootLogger := setupLogger(config.LoggingConfig{Level: "info", Format: "json"})

	holder, err := config.NewHolder(path, bootLogger)
	if err != nil {
		return nil, err
	}

	a, err := New(holder.Get())
	if err != nil {
		holder.Stop()
		return nil, err
	}
	a.holder = holder

	holder.OnChange(func(cfg *config.Config) {
		for _, def := range cfg.Definitions {
			a.Registry.Registry().Upsert(def)
		}
		if err := a.Registry.Load(context.Background()); err != nil {
			a.Logger.Warn().Err(err).Msg("override re-apply after reload failed")
		}
	})

	if err := holder.WatchFile(); err != nil {
		a.Logger.Warn().Err(err).Msg("config file watch unavailable")
	}
	holder.WatchSignals()

	return a, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().Str("addr", a.HTTPServer.Addr).Msg("http server listening")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-sigCh:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown stops the server, drains scheduled persists, and closes the
// store.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("http shutdown")
	}

	// Let in-flight override persists reach storage.
	a.Registry.Flush()

	if a.holder != nil {
		a.holder.Stop()
	}
	if err := a.store.Close(); err != nil {
		a.Logger.Error().Err(err).Msg("store close")
	}

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

// initStore opens the override store per config.
func (a *App) initStore() error {
	switch a.Config.Database.Driver {
	case "sqlite":
		db, err := sqlite.Open(a.Config.Database.DSN)
		if err != nil {
			return err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return err
		}
		a.db = db
		a.store = sqlite.NewKVStore(db)
		a.Logger.Info().Str("dsn", a.Config.Database.DSN).Msg("sqlite override store ready")
	default:
		a.store = memory.NewKVStore()
		a.Logger.Info().Msg("in-memory override store (overrides lost on restart)")
	}
	return nil
}

// setupLogger builds the root zerolog logger.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
