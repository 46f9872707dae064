package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "fishdating:"

// Store implements ports.PlayerStore using Redis, for saves shared between machines.
// Each profile is one JSON string; the profile names are tracked in a set.
type Store struct {
	client  *backend.Client
	prefix  string
	ttl     time.Duration
	locker  ports.Locker
	lockTTL time.Duration
}

type Option func(*Store)

// WithTTL expires saves that are not written again within ttl.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithLocker serializes writes to one profile across processes.
func WithLocker(l ports.Locker) Option {
	return func(s *Store) {
		s.locker = l
	}
}

// New creates a Redis store connected to address.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client:  client,
		prefix:  DefaultPrefix,
		lockTTL: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(profile string) string {
	return s.prefix + "save:" + profile
}

func (s *Store) indexKey() string {
	return s.prefix + "profiles"
}

// Save writes the state, holding the profile lock when a Locker is configured.
func (s *Store) Save(ctx context.Context, profile string, state *domain.PlayerState) error {
	if profile == "" {
		return fmt.Errorf("profile cannot be empty")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal player state: %w", err)
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, profile, s.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to lock profile %q: %w", profile, err)
		}
		defer func() { _ = unlock(context.WithoutCancel(ctx)) }()
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(profile), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), profile)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load reads the state of a profile.
func (s *Store) Load(ctx context.Context, profile string) (*domain.PlayerState, error) {
	val, err := s.client.Get(ctx, s.key(profile)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var state domain.PlayerState
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player state: %w", err)
	}
	state.Normalize()
	return &state, nil
}

// Delete removes the profile.
func (s *Store) Delete(ctx context.Context, profile string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(profile))
	pipe.SRem(ctx, s.indexKey(), profile)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the profiles whose save still exists.
// Index entries left behind by expired saves are pruned on the way.
func (s *Store) List(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]string, 0, len(members))
	for _, p := range members {
		n, err := s.client.Exists(ctx, s.key(p)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check profile %q: %w", p, err)
		}
		if n == 0 {
			if err := s.client.SRem(ctx, s.indexKey(), p).Err(); err != nil {
				return nil, fmt.Errorf("failed to prune expired profile: %w", err)
			}
			continue
		}
		profiles = append(profiles, p)
	}
	slices.Sort(profiles)
	return profiles, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
