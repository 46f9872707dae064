package dsl

import "github.com/quinnjr/fish-dating-simulator/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Say marks the node as a text beat spoken by speaker (empty for narration).
func (n *NodeBuilder) Say(speaker, text string) *NodeBuilder {
	n.node.Type = domain.NodeTypeText
	n.node.Speaker = speaker
	n.node.Text = text
	return n
}

// Go sets the node that follows a text beat.
func (n *NodeBuilder) Go(next string) *NodeBuilder {
	n.node.Next = next
	return n
}

// Ask marks the node as a choice with the given prompt.
func (n *NodeBuilder) Ask(prompt string) *NodeBuilder {
	n.node.Type = domain.NodeTypeChoice
	n.node.Prompt = prompt
	return n
}

// Options appends answers to a choice node. Order is the selection index.
func (n *NodeBuilder) Options(options ...*OptionBuilder) *NodeBuilder {
	for _, o := range options {
		n.node.Choices = append(n.node.Choices, o.Build())
	}
	return n
}

// Terminal marks the node as the end of the conversation.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.node = domain.End(n.node.ID)
	return n
}

// Done returns to the graph builder.
func (n *NodeBuilder) Done() *Builder {
	return n.builder
}

// Build returns the underlying domain.Node.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}

// OptionBuilder configures one answer of a choice node.
type OptionBuilder struct {
	option domain.ChoiceOption
}

// Option starts an answer that leads to target.
func Option(text, target string) *OptionBuilder {
	return &OptionBuilder{option: domain.ChoiceOption{Text: text, Target: target}}
}

// Sets adds delta to a variable when the answer is picked. Zero deltas are ignored.
func (o *OptionBuilder) Sets(variable string, delta int) *OptionBuilder {
	if delta == 0 {
		return o
	}
	if o.option.Deltas == nil {
		o.option.Deltas = make(map[string]int)
	}
	o.option.Deltas[variable] += delta
	return o
}

// Affection is shorthand for Sets("affection", delta).
func (o *OptionBuilder) Affection(delta int) *OptionBuilder {
	return o.Sets(domain.AffectionVar, delta)
}

// Build returns the underlying domain.ChoiceOption.
func (o *OptionBuilder) Build() domain.ChoiceOption {
	return o.option
}
