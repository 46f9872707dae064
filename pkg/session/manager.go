package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quinnjr/fish-dating-simulator/internal/logging"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed process can hold a profile.
const DefaultLockTTL = 30 * time.Second

// lockKeyPrefix keeps manager locks apart from the store's own save locks.
const lockKeyPrefix = "session:"

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager guards profile updates. Unused locks are dropped by reference counting.
type Manager struct {
	store ports.PlayerStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.Locker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker also takes a cross-process lock for every update.
func WithLocker(locker ports.Locker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager over store.
func NewManager(store ports.PlayerStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller locks entry.mu and calls release after unlocking it.
func (m *Manager) acquire(profile string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[profile]
	if !exists {
		entry = &lockEntry{}
		m.locks[profile] = entry
	}
	entry.refs++
	return entry
}

func (m *Manager) release(profile string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[profile]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, profile)
	}
}

// load returns the saved state or a new player when the profile was never saved.
func (m *Manager) load(ctx context.Context, profile string) (*domain.PlayerState, error) {
	state, err := m.store.Load(ctx, profile)
	switch {
	case err == nil:
		return state, nil
	case errors.Is(err, domain.ErrSaveNotFound):
		return domain.NewPlayerState(), nil
	default:
		return nil, fmt.Errorf("failed to load profile %q: %w", profile, err)
	}
}

// Load reads a profile. A profile that was never saved yields a new player.
func (m *Manager) Load(ctx context.Context, profile string) (*domain.PlayerState, error) {
	var state *domain.PlayerState
	err := m.WithLock(ctx, profile, func(ctx context.Context) error {
		var err error
		state, err = m.load(ctx, profile)
		return err
	})
	return state, err
}

// Update loads the latest save, applies fn and saves the result. Nothing is written when fn
// fails. The updated state is returned.
func (m *Manager) Update(ctx context.Context, profile string, fn func(*domain.PlayerState) error) (*domain.PlayerState, error) {
	var state *domain.PlayerState
	err := m.WithLock(ctx, profile, func(ctx context.Context) error {
		var err error
		if state, err = m.load(ctx, profile); err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}
		if err := m.store.Save(ctx, profile, state); err != nil {
			return fmt.Errorf("failed to save profile %q: %w", profile, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Delete removes the profile from the store.
func (m *Manager) Delete(ctx context.Context, profile string) error {
	return m.WithLock(ctx, profile, func(ctx context.Context) error {
		return m.store.Delete(ctx, profile)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying store.
func (m *Manager) Store() ports.PlayerStore {
	return m.store
}

// WithLock runs fn while holding the lock for profile.
func (m *Manager) WithLock(ctx context.Context, profile string, fn func(context.Context) error) error {
	entry := m.acquire(profile)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(profile)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, lockKeyPrefix+profile, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to lock profile %q: %w", profile, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				m.logger.Warn("failed to release profile lock, it will expire",
					"profile", profile,
					"ttl", m.lockTTL,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
