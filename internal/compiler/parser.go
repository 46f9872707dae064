// Package compiler turns dialogue documents into dialogue trees.
package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quinnjr/fish-dating-simulator/internal/dto"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/plugin"
)

var (
	ErrNodeMissingID = errors.New("node missing id")
	ErrUnknownType   = errors.New("unknown node type")
)

// Parser converts raw YAML or JSON documents into dialogue definitions.
type Parser struct {
	// Strict rejects unknown keys.
	Strict bool
}

// NewParser creates a strict parser.
func NewParser() *Parser {
	return &Parser{Strict: true}
}

// Parse decodes a document. JSON input is accepted since it is valid YAML.
func (p *Parser) Parse(data []byte) (*plugin.DialogueDef, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(p.Strict)

	var doc dto.DialogueDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse dialogue: %w", err)
	}

	def := plugin.NewDialogueDef(doc.Title)
	for _, s := range doc.Speakers {
		def.AddSpeaker(s.ID, s.Name)
	}
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d: %w", i+1, ErrNodeMissingID)
		}
		switch kind := nodeType(n); kind {
		case domain.NodeTypeText:
			def.AddText(n.ID, n.Speaker, n.Text, n.Next)
		case domain.NodeTypeChoice:
			options := make([]plugin.ChoiceOptionDef, 0, len(n.Choices))
			for _, o := range n.Choices {
				options = append(options, plugin.ChoiceOptionDef{Text: o.Text, Next: o.Next, Affection: o.Affection, Vars: o.Vars})
			}
			def.AddChoice(n.ID, n.Prompt, options)
		case domain.NodeTypeEnd:
			def.AddEnd(n.ID)
		default:
			return nil, fmt.Errorf("node %q: %w %q", n.ID, ErrUnknownType, kind)
		}
	}
	return def, nil
}

// nodeType infers a missing type: options make a choice, text makes a text node, else end.
func nodeType(n dto.NodeDocument) string {
	if n.Type != "" {
		return n.Type
	}
	switch {
	case len(n.Choices) > 0 || n.Prompt != "":
		return domain.NodeTypeChoice
	case n.Text != "":
		return domain.NodeTypeText
	default:
		return domain.NodeTypeEnd
	}
}

// Compile parses and validates a document.
func (p *Parser) Compile(data []byte) (*domain.Tree, error) {
	def, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return def.ToTree()
}

// CompileFile reads and compiles a document. When the tree fails validation, the unchecked
// tree is still returned alongside the error so that tooling can inspect it.
func CompileFile(path string) (*domain.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue: %w", err)
	}
	def, err := NewParser().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tree, err := def.ToTree()
	if err != nil {
		return def.ToTreeUnchecked(), fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}
