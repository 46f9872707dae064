package dsl

import (
	"fmt"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Builder manages the dialogue graph construction.
type Builder struct {
	title    string
	start    string
	speakers []domain.Speaker
	nodes    map[string]*NodeBuilder // latest builder per id, for Add
	list     []*NodeBuilder          // every node in insertion order, duplicates included
}

// New creates a new dialogue builder whose conversation begins at start.
func New(start string) *Builder {
	return &Builder{
		start: start,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Title sets the human-readable title of the conversation.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Speaker declares a participant referenced by text nodes.
func (b *Builder) Speaker(id, displayName string) *Builder {
	b.speakers = append(b.speakers, domain.Speaker{ID: id, DisplayName: displayName})
	return b
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder so it can be edited further.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	return b.append(domain.Node{ID: id})
}

func (b *Builder) append(n domain.Node) *NodeBuilder {
	nb := &NodeBuilder{node: n, builder: b}
	b.nodes[n.ID] = nb
	b.list = append(b.list, nb)
	return nb
}

// Node appends a node built elsewhere. Reusing an id makes Build fail with
// domain.ErrDuplicateNode.
func (b *Builder) Node(n domain.Node) *Builder {
	b.append(n)
	return b
}

// Text appends a text beat. An empty next ends the conversation after it.
func (b *Builder) Text(id, speaker, text, next string) *Builder {
	return b.Node(domain.Text(id, speaker, text, next))
}

// Choice appends a choice node with options in selection order.
func (b *Builder) Choice(id, prompt string, options ...*OptionBuilder) *Builder {
	b.append(domain.Node{ID: id}).Ask(prompt).Options(options...)
	return b
}

// End appends a terminal node.
func (b *Builder) End(id string) *Builder {
	return b.Node(domain.End(id))
}

// Build validates and compiles the graph.
func (b *Builder) Build() (*domain.Tree, error) {
	tree, err := domain.NewTree(b.title, b.start, b.speakers, b.collect())
	if err != nil {
		return nil, fmt.Errorf("build dialogue %q: %w", b.title, err)
	}
	return tree, nil
}

// BuildUnchecked compiles the graph without referential-integrity checks.
// Dangling references surface at run time as the end of the conversation.
func (b *Builder) BuildUnchecked() *domain.Tree {
	return domain.NewTreeUnchecked(b.title, b.start, b.speakers, b.collect())
}

// MustBuild is like Build but panics on error.
// It is meant for compiled-in content whose validity is covered by tests.
func (b *Builder) MustBuild() *domain.Tree {
	tree, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tree
}

func (b *Builder) collect() []domain.Node {
	nodes := make([]domain.Node, 0, len(b.list))
	for _, nb := range b.list {
		nodes = append(nodes, nb.node)
	}
	return nodes
}
