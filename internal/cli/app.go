// Package cli wires configuration, logging, persistence and the plugin catalog for the
// fishdating command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	backend "github.com/redis/go-redis/v9"

	"github.com/quinnjr/fish-dating-simulator"
	"github.com/quinnjr/fish-dating-simulator/internal/achievements"
	"github.com/quinnjr/fish-dating-simulator/internal/config"
	"github.com/quinnjr/fish-dating-simulator/internal/game"
	"github.com/quinnjr/fish-dating-simulator/internal/logging"
	"github.com/quinnjr/fish-dating-simulator/pkg/adapters/file"
	"github.com/quinnjr/fish-dating-simulator/pkg/adapters/redis"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports"
	"github.com/quinnjr/fish-dating-simulator/pkg/session"
)

// Options are the command-line overrides applied on top of the loaded configuration.
type Options struct {
	Debug bool
	// Interactive means the full-screen UI owns the terminal, so logs go to the log file or nowhere.
	Interactive bool
	// SkipPlugins leaves the catalog with the built-in cast only.
	SkipPlugins bool
	// Stderr receives logs in non-interactive mode. nil discards them.
	Stderr io.Writer
}

// App is everything a command needs.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Sim     *fishdating.Simulator
	Store   ports.PlayerStore
	// Sessions serializes profile updates made outside the game host.
	Sessions *session.Manager

	closers []io.Closer
}

// NewApp builds the logger, the save store and the character catalog.
func NewApp(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	app := &App{Config: cfg, Metrics: observability.NewMetrics()}

	logger, err := app.createLogger(opts)
	if err != nil {
		return nil, err
	}
	app.Logger = logger

	var locker ports.Locker
	app.Store, locker = app.createStore()
	sessionOpts := []session.Option{session.WithLogger(logger)}
	if locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(locker))
	}
	app.Sessions = session.NewManager(app.Store, sessionOpts...)

	pluginsDir := cfg.PluginsDir
	if opts.SkipPlugins {
		pluginsDir = ""
	}
	app.Sim = fishdating.Load(ctx, pluginsDir,
		fishdating.WithLogger(logger),
		fishdating.WithMetrics(app.Metrics),
		fishdating.WithBudget(cfg.OpBudget),
		fishdating.WithTimeout(cfg.ScriptTimeout),
	)
	return app, nil
}

func (a *App) createLogger(opts Options) (*slog.Logger, error) {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		level = slog.LevelDebug
	}

	switch {
	case a.Config.LogFile != "":
		logger, closer, err := logging.NewFile(a.Config.LogFile, level)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closer)
		return logger, nil
	case opts.Interactive || opts.Stderr == nil:
		return logging.NewNop(), nil
	default:
		return logging.NewWriter(opts.Stderr, level), nil
	}
}

// createStore picks Redis when an address is configured, the per-user save directory otherwise.
// The locker is nil for file saves.
func (a *App) createStore() (ports.PlayerStore, ports.Locker) {
	if a.Config.RedisAddr == "" {
		return file.New(a.Config.SaveDir), nil
	}
	client := backend.NewClient(&backend.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	locker := redis.NewLocker(client, redis.DefaultPrefix)
	store := redis.NewFromClient(client, redis.WithLocker(locker))
	a.closers = append(a.closers, store)
	a.Logger.Info("using redis saves", "addr", a.Config.RedisAddr)
	return store, locker
}

// Close releases the log file and store connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	return errors.Join(errs...)
}

// Rand returns the minigame random source: seeded from the config, or from the runtime if unset.
func (a *App) Rand() *rand.Rand {
	if a.Config.Seed != 0 {
		return rand.New(rand.NewPCG(uint64(a.Config.Seed), 0))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewGame restores the configured profile into a game host.
func (a *App) NewGame(ctx context.Context) (*game.Game, error) {
	return game.New(ctx, a.Sim.Catalog,
		game.WithStore(a.Store, a.Config.Profile),
		game.WithLogger(a.Logger),
		game.WithMetrics(a.Metrics),
		game.WithRand(a.Rand()),
	)
}

// LoadPlayer reads the configured profile. A missing save is a new player; other failures are
// logged and also yield a new player, as in the game.
func (a *App) LoadPlayer(ctx context.Context) *domain.PlayerState {
	p, err := a.Sessions.Load(ctx, a.Config.Profile)
	if err != nil {
		a.Logger.Warn("could not load save, starting a new game", "profile", a.Config.Profile, "err", err)
		return domain.NewPlayerState()
	}
	return p
}

// Tracker builds the default achievement tracker over the catalog.
func (a *App) Tracker() (*achievements.Tracker, error) {
	t, err := achievements.NewTracker(achievements.Builtin, a.Sim.Catalog.All, achievements.WithLogger(a.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build achievements: %w", err)
	}
	return t, nil
}
