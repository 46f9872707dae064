package domain

// NodeType constants define the control flow behavior of a node.
const (
	// NodeTypeText displays a single beat and waits for the host to advance.
	NodeTypeText = "text"
	// NodeTypeChoice presents an ordered list of options and waits for a selection.
	NodeTypeChoice = "choice"
	// NodeTypeEnd terminates the conversation.
	NodeTypeEnd = "end"
)

// Node represents a logical unit in the dialogue graph.
// Only the fields relevant to its Type are meaningful; empty strings stand for "none".
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`

	// Text node fields.
	Speaker string `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Next    string `json:"next,omitempty" yaml:"next,omitempty"`

	// Choice node fields.
	Prompt  string         `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Choices []ChoiceOption `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// ChoiceOption is one selectable answer of a Choice node.
// Its position in Node.Choices is its selection index.
type ChoiceOption struct {
	Text   string         `json:"text" yaml:"text"`
	Target string         `json:"target" yaml:"target"`
	Deltas map[string]int `json:"deltas,omitempty" yaml:"deltas,omitempty"`
}

// Speaker is a named participant referenced by Text nodes.
// It is used for presentation only and never affects control flow.
type Speaker struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Text creates a text node. An empty next behaves like reaching an End node.
func Text(id, speaker, text, next string) Node {
	return Node{ID: id, Type: NodeTypeText, Speaker: speaker, Text: text, Next: next}
}

// Choice creates a choice node with the given options in selection order.
func Choice(id, prompt string, options ...ChoiceOption) Node {
	return Node{ID: id, Type: NodeTypeChoice, Prompt: prompt, Choices: options}
}

// End creates a terminal node.
func End(id string) Node {
	return Node{ID: id, Type: NodeTypeEnd}
}

// Targets returns every node id this node can transition to, in declaration order.
func (n Node) Targets() []string {
	switch n.Type {
	case NodeTypeText:
		if n.Next == "" {
			return nil
		}
		return []string{n.Next}
	case NodeTypeChoice:
		targets := make([]string, 0, len(n.Choices))
		for _, c := range n.Choices {
			targets = append(targets, c.Target)
		}
		return targets
	}
	return nil
}

// clone copies the mutable parts of a node so a Tree never shares them with its caller.
func (n Node) clone() Node {
	if n.Choices == nil {
		return n
	}
	choices := make([]ChoiceOption, len(n.Choices))
	for i, c := range n.Choices {
		if c.Deltas != nil {
			deltas := make(map[string]int, len(c.Deltas))
			for k, v := range c.Deltas {
				deltas[k] = v
			}
			c.Deltas = deltas
		}
		choices[i] = c
	}
	n.Choices = choices
	return n
}
