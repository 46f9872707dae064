package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/quinnjr/fish-dating-simulator/internal/achievements"
	"github.com/quinnjr/fish-dating-simulator/internal/compiler"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/runner"
)

// DateOptions selects what to play in line mode.
type DateOptions struct {
	// Fish is a fish id or display name. Ignored when File is set.
	Fish string
	// File plays a dialogue document instead of a character date. Nothing is saved.
	File string
	// JSON switches to JSON Lines I/O.
	JSON bool
}

// Date plays one date over in/out and commits the result to the saved profile.
func Date(ctx context.Context, app *App, opts DateOptions, in io.Reader, out io.Writer) (runner.Result, error) {
	var handler runner.Handler = runner.NewTextHandler(in, out)
	if opts.JSON {
		handler = runner.NewJSONHandler(in, out)
	}
	r := runner.New(
		runner.WithHandler(handler),
		runner.WithLogger(app.Logger),
		runner.WithMetrics(app.Metrics),
	)

	if opts.File != "" {
		tree, err := compiler.CompileFile(opts.File)
		if err != nil {
			return runner.Result{}, err
		}
		return r.Run(ctx, tree)
	}

	id, err := app.Sim.Catalog.Resolve(opts.Fish)
	if err != nil {
		return runner.Result{}, err
	}
	player := app.LoadPlayer(ctx)
	n := player.DateCount(id)
	name := app.Sim.Catalog.Name(id)

	if !opts.JSON {
		fmt.Fprintf(out, "~ Date #%d with %s ~\n\n", n+1, name)
	}
	app.Logger.Info("date started", "fish", id, "number", n)

	res, err := r.Run(ctx, app.Sim.Catalog.Dialogue(id, n))
	if err != nil {
		return res, err
	}

	tracker, err := app.Tracker()
	if err != nil {
		return res, err
	}
	var unlocked []achievements.Achievement
	player, err = app.Sessions.Update(ctx, app.Config.Profile, func(p *domain.PlayerState) error {
		p.CommitDate(id, res.Affection)
		unlocked = tracker.Check(p)
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to save game: %w", err)
	}
	app.Metrics.DateCompleted()
	app.Logger.Info("date finished", "fish", id, "affection", res.Affection, "aborted", res.Aborted)

	if !opts.JSON {
		score := player.Relationship(id)
		fmt.Fprintf(out, "\nAffection %+d. %s is now your %s (%d).\n", res.Affection, name, domain.RelationshipLabel(score), score)
		for _, a := range unlocked {
			fmt.Fprintf(out, "Achievement unlocked: %s\n", a.Name)
		}
		if player.HasWon() {
			fmt.Fprintln(out, "You found your soulmate!")
		}
	}
	return res, nil
}
