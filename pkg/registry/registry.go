package registry

import (
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Registry holds plugin-sourced characters for the process lifetime.
// It is append-only and keeps insertion order for deterministic iteration.
type Registry struct {
	mu     sync.RWMutex
	fish   map[string]*domain.FishDef
	order  []string
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report rejected registrations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		fish:   make(map[string]*domain.FishDef),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a character. The first registration of an id wins; later ones are logged
// and dropped, reporting false.
func (r *Registry) Register(def *domain.FishDef) bool {
	if def == nil || def.ID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fish[def.ID]; exists {
		r.logger.Warn("duplicate plugin fish id, keeping first registration", "id", def.ID, "name", def.Name)
		return false
	}
	r.fish[def.ID] = def
	r.order = append(r.order, def.ID)
	return true
}

// Get looks up a character by id.
func (r *Registry) Get(id string) (*domain.FishDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.fish[id]
	return def, ok
}

// IDs returns every id in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// All returns every character in registration order.
func (r *Registry) All() []*domain.FishDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.FishDef, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.fish[id])
	}
	return out
}

// Count returns the number of registered characters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// PondNames lists each character's pond in registration order.
func (r *Registry) PondNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.fish[id].PondName)
	}
	return out
}

// FishByPond finds the first character living in the named pond.
func (r *Registry) FishByPond(pond string) (*domain.FishDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if def := r.fish[id]; def.PondName == pond {
			return def, true
		}
	}
	return nil, false
}
