package domain

import (
	"encoding/json"
	"errors"
)

// Tree is an immutable conversation graph: a mapping from node id to Node with a designated start
// node and a set of speakers. Once built it is never mutated and may be shared by any number of
// Runners.
type Tree struct {
	title        string
	start        string
	nodes        map[string]Node
	order        []string
	speakers     map[string]Speaker
	speakerOrder []string
}

// NewTree builds a Tree and validates its referential integrity.
// Every problem found is reported; the returned error matches each GraphError kind via errors.Is.
func NewTree(title, start string, speakers []Speaker, nodes []Node) (*Tree, error) {
	if err := Validate(start, speakers, nodes); err != nil {
		return nil, err
	}
	return NewTreeUnchecked(title, start, speakers, nodes), nil
}

// NewTreeUnchecked builds a Tree without validation.
// Later duplicates replace earlier nodes and dangling references are kept; a Runner that reaches
// one treats it as the end of the conversation.
func NewTreeUnchecked(title, start string, speakers []Speaker, nodes []Node) *Tree {
	t := &Tree{
		title:    title,
		start:    start,
		nodes:    make(map[string]Node, len(nodes)),
		speakers: make(map[string]Speaker, len(speakers)),
	}
	for _, s := range speakers {
		if _, ok := t.speakers[s.ID]; !ok {
			t.speakerOrder = append(t.speakerOrder, s.ID)
		}
		t.speakers[s.ID] = s
	}
	for _, n := range nodes {
		if _, ok := t.nodes[n.ID]; !ok {
			t.order = append(t.order, n.ID)
		}
		t.nodes[n.ID] = n.clone()
	}
	return t
}

// Validate checks a prospective graph without building it.
func Validate(start string, speakers []Speaker, nodes []Node) error {
	if len(nodes) == 0 {
		return &GraphError{Kind: ErrEmptyGraph}
	}

	var errs []error
	ids := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if ids[n.ID] {
			errs = append(errs, &GraphError{Kind: ErrDuplicateNode, Ref: n.ID})
			continue
		}
		ids[n.ID] = true
	}

	if !ids[start] {
		errs = append(errs, &GraphError{Kind: ErrStartMissing, Ref: start})
	}

	for _, n := range nodes {
		switch n.Type {
		case NodeTypeText:
			if n.Next != "" && !ids[n.Next] {
				errs = append(errs, &GraphError{Kind: ErrUnknownNext, NodeID: n.ID, Ref: n.Next})
			}
		case NodeTypeChoice:
			for _, c := range n.Choices {
				if !ids[c.Target] {
					errs = append(errs, &GraphError{Kind: ErrUnknownTarget, NodeID: n.ID, Ref: c.Target})
				}
			}
		case NodeTypeEnd:
		default:
			errs = append(errs, &GraphError{Kind: ErrUnknownType, NodeID: n.ID, Ref: n.Type})
		}
	}

	return errors.Join(errs...)
}

// Title returns the human-readable title of the conversation.
func (t *Tree) Title() string { return t.title }

// Start returns the id of the entry node.
func (t *Tree) Start() string { return t.start }

// Len returns the number of nodes in the graph.
func (t *Tree) Len() int { return len(t.nodes) }

// Node resolves a node by id.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Nodes returns all nodes in insertion order.
func (t *Tree) Nodes() []Node {
	out := make([]Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.nodes[id].clone())
	}
	return out
}

// Speaker resolves a speaker by id.
func (t *Tree) Speaker(id string) (Speaker, bool) {
	s, ok := t.speakers[id]
	return s, ok
}

// Speakers returns all speakers in insertion order.
func (t *Tree) Speakers() []Speaker {
	out := make([]Speaker, 0, len(t.speakerOrder))
	for _, id := range t.speakerOrder {
		out = append(out, t.speakers[id])
	}
	return out
}

type treeJSON struct {
	Title    string    `json:"title"`
	Start    string    `json:"start"`
	Speakers []Speaker `json:"speakers"`
	Nodes    []Node    `json:"nodes"`
}

// MarshalJSON exposes the graph for inspection tools.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(treeJSON{
		Title:    t.title,
		Start:    t.start,
		Speakers: t.Speakers(),
		Nodes:    t.Nodes(),
	})
}
