package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Store implements ports.PlayerStore in memory.
// Saves are kept in their encoded form so callers never share state with the store.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the state in memory.
func (s *Store) Save(ctx context.Context, profile string, state *domain.PlayerState) error {
	if profile == "" {
		return fmt.Errorf("profile cannot be empty")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal player state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[profile] = data
	return nil
}

// Load retrieves a fresh copy of the saved state.
func (s *Store) Load(ctx context.Context, profile string) (*domain.PlayerState, error) {
	s.mu.RLock()
	data, ok := s.data[profile]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSaveNotFound
	}

	var state domain.PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player state: %w", err)
	}
	state.Normalize()
	return &state, nil
}

// Delete removes the profile.
func (s *Store) Delete(ctx context.Context, profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, profile)
	return nil
}

// List returns the saved profiles.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]string, 0, len(s.data))
	for id := range s.data {
		profiles = append(profiles, id)
	}
	slices.Sort(profiles)
	return profiles, nil
}
