package runtime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Runner executes one dialogue Tree one step at a time.
// Every state change is driven by an explicit Advance or SelectChoice call.
// A Runner is not safe for concurrent use; the Tree it reads may be shared freely.
type Runner struct {
	tree    *domain.Tree
	node    domain.Node
	ended   bool
	vars    *Variables
	logger  *slog.Logger
	history []string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger reports dangling references and misuse at debug level.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner positioned at the tree's start node.
// A nil tree or a missing start node yields a Runner that is already ended.
func NewRunner(tree *domain.Tree, opts ...RunnerOption) *Runner {
	r := &Runner{
		tree:   tree,
		vars:   newVariables(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if tree == nil {
		r.ended = true
		return r
	}
	r.enter(tree.Start())
	return r
}

// Current returns the presentation data of the active node without changing state.
func (r *Runner) Current() domain.View {
	if r.ended {
		return domain.View{Kind: domain.ViewEnded}
	}

	switch r.node.Type {
	case domain.NodeTypeText:
		view := domain.View{Kind: domain.ViewText, NodeID: r.node.ID, Text: r.node.Text}
		if r.node.Speaker != "" {
			if s, ok := r.tree.Speaker(r.node.Speaker); ok {
				view.Speaker = &s
			}
		}
		return view
	case domain.NodeTypeChoice:
		choices := make([]string, len(r.node.Choices))
		for i, c := range r.node.Choices {
			choices[i] = c.Text
		}
		return domain.View{Kind: domain.ViewChoice, NodeID: r.node.ID, Prompt: r.node.Prompt, Choices: choices}
	}
	return domain.View{Kind: domain.ViewEnded}
}

// Advance moves past a text beat. It fails with domain.ErrInvalidOperation outside a text node.
func (r *Runner) Advance() error {
	if r.ended || r.node.Type != domain.NodeTypeText {
		return fmt.Errorf("advance from %s: %w", r.Current().Kind, domain.ErrInvalidOperation)
	}
	r.enter(r.node.Next)
	return nil
}

// SelectChoice picks option i of the active choice, applies its deltas and moves to its target.
// An out-of-range index fails with domain.ErrIndexOutOfRange and leaves the Runner untouched.
func (r *Runner) SelectChoice(i int) error {
	if r.ended || r.node.Type != domain.NodeTypeChoice {
		return fmt.Errorf("select choice from %s: %w", r.Current().Kind, domain.ErrInvalidOperation)
	}
	if i < 0 || i >= len(r.node.Choices) {
		return fmt.Errorf("select choice %d of %d: %w", i, len(r.node.Choices), domain.ErrIndexOutOfRange)
	}

	opt := r.node.Choices[i]
	r.vars.applyAll(opt.Deltas)
	r.enter(opt.Target)
	return nil
}

// PollEvent pops the oldest variable change. Events are returned once.
func (r *Runner) PollEvent() (domain.VariableChanged, bool) {
	return r.vars.poll()
}

// DrainEvents pops every queued event in order.
func (r *Runner) DrainEvents() []domain.VariableChanged {
	var out []domain.VariableChanged
	for {
		ev, ok := r.vars.poll()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

// Value reads a session variable.
func (r *Runner) Value(name string) int {
	return r.vars.Get(name)
}

// Variables exposes the read-only session store.
func (r *Runner) Variables() *Variables {
	return r.vars
}

// Ended reports whether the conversation is over.
func (r *Runner) Ended() bool {
	return r.ended
}

// History returns the ids of the nodes visited so far, start first.
func (r *Runner) History() []string {
	return append([]string(nil), r.history...)
}

// enter resolves id and makes it the active node. Empty, unknown or End ids terminate.
func (r *Runner) enter(id string) {
	if id == "" {
		r.end()
		return
	}
	node, ok := r.tree.Node(id)
	if !ok {
		r.logger.Debug("dangling node reference, ending conversation", "tree", r.tree.Title(), "node", id)
		r.end()
		return
	}
	r.history = append(r.history, id)
	switch node.Type {
	case domain.NodeTypeText, domain.NodeTypeChoice:
		r.node = node
	default:
		r.end()
	}
}

func (r *Runner) end() {
	r.ended = true
	r.node = domain.Node{}
}
