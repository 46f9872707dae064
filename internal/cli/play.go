package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/quinnjr/fish-dating-simulator/internal/presentation/tui"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Play runs the full-screen game. Without a terminal it falls back to a line-mode date with
// the player's closest fish, or Bubbles for a new player.
func Play(ctx context.Context, app *App, in *os.File, out io.Writer) error {
	if IsTerminal(in) {
		g, err := app.NewGame(ctx)
		if err != nil {
			return err
		}
		return tui.Run(ctx, g)
	}

	id := domain.BuiltinID(domain.Bubbles)
	if closest, _, ok := app.LoadPlayer(ctx).Closest(); ok {
		id = closest
	}
	fmt.Fprintln(out, "No terminal detected, playing a date in line mode. Type q to leave.")
	_, err := Date(ctx, app, DateOptions{Fish: id.String()}, in, out)
	return err
}
