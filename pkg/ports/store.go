package ports

import (
	"context"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// DefaultProfile is the profile used when the player never picks one.
const DefaultProfile = "save"

// PlayerStore defines the interface for persisting player progress.
type PlayerStore interface {
	// Save persists the state of a profile, replacing any previous save.
	Save(ctx context.Context, profile string, state *domain.PlayerState) error

	// Load retrieves the state of a profile.
	// Returns domain.ErrSaveNotFound if the profile has never been saved.
	Load(ctx context.Context, profile string) (*domain.PlayerState, error)

	// Delete removes a profile. Deleting a missing profile is not an error.
	Delete(ctx context.Context, profile string) error

	// List returns the saved profile names in ascending order.
	List(ctx context.Context) ([]string, error)
}
