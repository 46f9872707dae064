package plugin

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
	"github.com/quinnjr/fish-dating-simulator/internal/dto"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// DefaultStart is the start node of a dialogue definition with no nodes.
const DefaultStart = "start"

// SpeakerDef declares a participant of a scripted dialogue.
type SpeakerDef struct {
	ID          string
	DisplayName string
}

// ChoiceOptionDef is one answer of a scripted choice.
// Affection is a shorthand merged into Vars under the affection variable.
type ChoiceOptionDef struct {
	Text      string
	Next      string
	Affection int
	Vars      map[string]int
}

// NodeDef is one node of a scripted dialogue. Kind is one of the domain node types.
type NodeDef struct {
	Kind    string
	ID      string
	Speaker string
	Text    string
	Next    string
	Prompt  string
	Options []ChoiceOptionDef
}

// DialogueDef is the primitive-only dialogue builder driven by plugin scripts.
// It is lowered into a domain.Tree, after which the Runner cannot tell which builder produced it.
type DialogueDef struct {
	Title    string
	Speakers []SpeakerDef
	Nodes    []NodeDef
}

// NewDialogueDef starts an empty definition.
func NewDialogueDef(title string) *DialogueDef {
	return &DialogueDef{Title: title}
}

func (d *DialogueDef) AddSpeaker(id, displayName string) {
	d.Speakers = append(d.Speakers, SpeakerDef{ID: id, DisplayName: displayName})
}

func (d *DialogueDef) AddText(id, speaker, text, next string) {
	d.Nodes = append(d.Nodes, NodeDef{Kind: domain.NodeTypeText, ID: id, Speaker: speaker, Text: text, Next: next})
}

func (d *DialogueDef) AddChoice(id, prompt string, options []ChoiceOptionDef) {
	d.Nodes = append(d.Nodes, NodeDef{Kind: domain.NodeTypeChoice, ID: id, Prompt: prompt, Options: options})
}

func (d *DialogueDef) AddEnd(id string) {
	d.Nodes = append(d.Nodes, NodeDef{Kind: domain.NodeTypeEnd, ID: id})
}

// StartID is the id of the first node added, or DefaultStart.
func (d *DialogueDef) StartID() string {
	if len(d.Nodes) == 0 {
		return DefaultStart
	}
	return d.Nodes[0].ID
}

// ToTree lowers the definition into a validated tree.
func (d *DialogueDef) ToTree() (*domain.Tree, error) {
	speakers, nodes := d.lower()
	tree, err := domain.NewTree(d.Title, d.StartID(), speakers, nodes)
	if err != nil {
		return nil, fmt.Errorf("dialogue %q: %w", d.Title, err)
	}
	return tree, nil
}

// ToTreeUnchecked lowers the definition without validation.
func (d *DialogueDef) ToTreeUnchecked() *domain.Tree {
	speakers, nodes := d.lower()
	return domain.NewTreeUnchecked(d.Title, d.StartID(), speakers, nodes)
}

func (d *DialogueDef) lower() ([]domain.Speaker, []domain.Node) {
	speakers := make([]domain.Speaker, 0, len(d.Speakers))
	for _, s := range d.Speakers {
		speakers = append(speakers, domain.Speaker{ID: s.ID, DisplayName: s.DisplayName})
	}

	nodes := make([]domain.Node, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		switch n.Kind {
		case domain.NodeTypeText:
			nodes = append(nodes, domain.Text(n.ID, n.Speaker, n.Text, n.Next))
		case domain.NodeTypeChoice:
			options := make([]domain.ChoiceOption, 0, len(n.Options))
			for _, o := range n.Options {
				options = append(options, o.lower())
			}
			nodes = append(nodes, domain.Choice(n.ID, n.Prompt, options...))
		case domain.NodeTypeEnd:
			nodes = append(nodes, domain.End(n.ID))
		}
	}
	return speakers, nodes
}

// lower merges Affection into the delta map and drops zero deltas.
func (o ChoiceOptionDef) lower() domain.ChoiceOption {
	deltas := make(map[string]int, len(o.Vars)+1)
	for name, v := range o.Vars {
		deltas[name] = v
	}
	deltas[domain.AffectionVar] += o.Affection
	maps.DeleteFunc(deltas, func(_ string, v int) bool { return v == 0 })
	if len(deltas) == 0 {
		deltas = nil
	}
	return domain.ChoiceOption{Text: o.Text, Target: o.Next, Deltas: deltas}
}

// ParseChoiceOptions converts script-supplied option maps. Each entry needs string "text" and
// "next" keys; "affection" (number, default 0) and "vars" (name to number) are optional.
// Entries that cannot be coerced are skipped; so are unusable vars.
func ParseChoiceOptions(items []any) []ChoiceOptionDef {
	out := make([]ChoiceOptionDef, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}

		var opt dto.ChoiceOption
		// Fields that fail to decode stay nil; only text and next are mandatory.
		_ = mapstructure.Decode(raw, &opt)
		if opt.Text == nil || opt.Next == nil {
			continue
		}

		def := ChoiceOptionDef{Text: *opt.Text, Next: *opt.Next}
		if opt.Affection != nil {
			def.Affection = int(*opt.Affection)
		}
		if len(opt.Vars) > 0 {
			def.Vars = make(map[string]int, len(opt.Vars))
			for name, v := range opt.Vars {
				def.Vars[name] = int(v)
			}
		}
		out = append(out, def)
	}
	return out
}
