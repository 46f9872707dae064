package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/quinnjr/fish-dating-simulator/internal/runtime"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
)

const quitCommand = "q"

// Result summarizes a finished date.
type Result struct {
	// Affection is the net change of the affection variable.
	Affection int
	// Aborted is set when the player walked away or the input ran out before the end.
	Aborted bool
	// Events lists every variable change in the order it happened.
	Events []domain.VariableChanged
	// Path lists the visited node ids.
	Path []string
}

// Runner drives one dialogue tree through a Handler.
type Runner struct {
	Handler Handler
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithHandler sets the I/O strategy. The default is a TextHandler on stdin/stdout.
func WithHandler(h Handler) Option {
	return func(r *Runner) {
		r.Handler = h
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithMetrics counts selected choices.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run plays tree until it ends, the player quits or the input is exhausted.
// Only handler failures and context cancellation are returned as errors; a Result is
// returned in every case so that partial progress can still be committed.
func (r *Runner) Run(ctx context.Context, tree *domain.Tree) (Result, error) {
	rt := runtime.NewRunner(tree, runtime.WithLogger(r.Logger))
	var res Result

	collect := func() {
		for _, ev := range rt.DrainEvents() {
			res.Events = append(res.Events, ev)
			if ev.Name == domain.AffectionVar {
				res.Affection += ev.Delta()
			}
		}
	}
	finish := func(err error) (Result, error) {
		collect()
		res.Path = rt.History()
		return res, err
	}

	for {
		view := rt.Current()
		if err := r.Handler.Show(ctx, view); err != nil {
			return finish(fmt.Errorf("failed to show node %q: %w", view.NodeID, err))
		}
		if view.Ended() {
			return finish(nil)
		}

		line, err := r.Handler.Input(ctx)
		switch {
		case errors.Is(err, ErrInputTooLarge), errors.Is(err, ErrInvalidUTF8):
			_ = r.Handler.SystemOutput(ctx, err.Error())
			continue
		case errors.Is(err, io.EOF):
			r.Logger.Debug("input closed before the end", "node", view.NodeID)
			res.Aborted = true
			return finish(nil)
		case err != nil:
			res.Aborted = true
			return finish(err)
		}

		if strings.EqualFold(line, quitCommand) || strings.EqualFold(line, "quit") {
			res.Aborted = true
			return finish(nil)
		}

		if view.Kind == domain.ViewText {
			if err := rt.Advance(); err != nil {
				return finish(err)
			}
			collect()
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			_ = r.Handler.SystemOutput(ctx, choiceHint(len(view.Choices)))
			continue
		}
		if err := rt.SelectChoice(n - 1); err != nil {
			if errors.Is(err, domain.ErrIndexOutOfRange) {
				_ = r.Handler.SystemOutput(ctx, choiceHint(len(view.Choices)))
				continue
			}
			return finish(err)
		}
		r.Metrics.ChoiceSelected()
		collect()
	}
}

func choiceHint(n int) string {
	if n == 0 {
		return "there is nothing to answer; type q to leave"
	}
	return fmt.Sprintf("pick a number between 1 and %d, or q to leave", n)
}
