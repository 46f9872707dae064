package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

const (
	// AppDir is the directory created under the user config dir.
	AppDir = "fish-dating-simulator"
	ext    = ".json"
)

// Store implements ports.PlayerStore using the local filesystem.
// Each profile is one JSON file in BasePath; the default profile lives in save.json.
type Store struct {
	BasePath string
}

// New creates a new Store rooted at basePath.
// If basePath is empty, it defaults to <UserConfigDir>/fish-dating-simulator, falling back to
// a dot directory in the working directory when no config dir is known.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = DefaultDir()
	}
	return &Store{BasePath: basePath}
}

// DefaultDir returns the per-user save directory.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + AppDir
	}
	return filepath.Join(dir, AppDir)
}

func (s *Store) path(profile string) (string, error) {
	if profile == "" {
		return "", fmt.Errorf("profile cannot be empty")
	}
	if strings.ContainsAny(profile, `/\`) || profile == "." || profile == ".." {
		return "", fmt.Errorf("invalid profile name %q", profile)
	}
	return filepath.Join(s.BasePath, profile+ext), nil
}

// Save persists the player state to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, profile string, state *domain.PlayerState) error {
	destPath, err := s.path(profile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure save directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal player state: %w", err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+profile+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename refuses to replace an existing file on Windows.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove previous save: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to move save into place: %w", err)
	}
	return nil
}

// Load reads a profile's save file.
func (s *Store) Load(ctx context.Context, profile string) (*domain.PlayerState, error) {
	filePath, err := s.path(profile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var state domain.PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save file %s: %w", filePath, err)
	}
	state.Normalize()
	return &state, nil
}

// Delete removes the save file.
func (s *Store) Delete(ctx context.Context, profile string) error {
	filePath, err := s.path(profile)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// List returns every saved profile.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var profiles []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		profiles = append(profiles, strings.TrimSuffix(name, ext))
	}
	slices.Sort(profiles)
	return profiles, nil
}
