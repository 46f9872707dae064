package fishdating

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/quinnjr/fish-dating-simulator/internal/runtime"
	"github.com/quinnjr/fish-dating-simulator/pkg/characters"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
	"github.com/quinnjr/fish-dating-simulator/pkg/plugin"
	"github.com/quinnjr/fish-dating-simulator/pkg/registry"
)

// Runner steps through one dialogue tree. See NewRunner.
type Runner = runtime.Runner

// NewRunner starts a conversation at the tree's start node.
// A tree whose start node cannot be resolved yields a Runner that is already ended.
func NewRunner(tree *domain.Tree) *Runner {
	return runtime.NewRunner(tree)
}

// Simulator holds the character catalog: the built-in cast plus loaded plugins.
type Simulator struct {
	Registry *registry.Registry
	Catalog  *characters.Catalog
	Report   plugin.Report

	logger  *slog.Logger
	metrics *observability.Metrics
	budget  int64
	timeout time.Duration
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets a structured logger for plugin loading and dialogue runs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithMetrics records plugin outcomes.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Simulator) {
		s.metrics = m
	}
}

// WithBudget sets the per-script instruction budget of the plugin sandbox.
func WithBudget(ops int64) Option {
	return func(s *Simulator) {
		s.budget = ops
	}
}

// WithTimeout sets the per-script wall-clock limit of the plugin sandbox.
func WithTimeout(d time.Duration) Option {
	return func(s *Simulator) {
		s.timeout = d
	}
}

// Load builds the catalog from the built-in cast and the scripts in pluginsDir.
// An empty pluginsDir skips plugin loading. A missing directory simply yields no plugins.
func Load(ctx context.Context, pluginsDir string, opts ...Option) *Simulator {
	s := &Simulator{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s.Registry = registry.NewRegistry(registry.WithLogger(s.logger))
	if pluginsDir != "" {
		loader := &plugin.Loader{
			Dir:     pluginsDir,
			Budget:  s.budget,
			Timeout: s.timeout,
			Logger:  s.logger,
			Metrics: s.metrics,
		}
		s.Report = loader.Load(ctx, s.Registry)
	}
	s.Catalog = characters.NewCatalog(s.Registry)
	return s
}

// Runner starts date number n with a character. Unknown characters get a generated date.
func (s *Simulator) Runner(id domain.FishID, n int) *Runner {
	return runtime.NewRunner(s.Catalog.Dialogue(id, n), runtime.WithLogger(s.logger))
}
