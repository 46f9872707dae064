package runner

import (
	"context"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Handler is the strategy for talking to the player.
// This allows switching between human text and structured JSON output.
type Handler interface {
	// Show presents the current step of the date.
	Show(ctx context.Context, view domain.View) error

	// Input reads one response. io.EOF means the player is gone.
	Input(ctx context.Context) (string, error)

	// SystemOutput reports something that is not part of the dialogue, such as a rejected input.
	SystemOutput(ctx context.Context, msg string) error
}
