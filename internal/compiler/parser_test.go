package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quinnjr/fish-dating-simulator/internal/compiler"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reefWalk = `
title: Reef Walk
speakers:
  - id: coral
    name: Coral
nodes:
  - id: start
    speaker: coral
    text: The reef is lovely today.
    next: ask
  - id: ask
    prompt: Coral waits.
    choices:
      - text: It really is
        next: end
        affection: 4
        vars: {trust: 1}
      - text: Meh
        next: end
  - id: end
`

func TestCompile_YAML(t *testing.T) {
	tree, err := compiler.NewParser().Compile([]byte(reefWalk))
	require.NoError(t, err)

	assert.Equal(t, "Reef Walk", tree.Title())
	assert.Equal(t, "start", tree.Start())
	assert.Equal(t, 3, tree.Len())

	ask, ok := tree.Node("ask")
	require.True(t, ok)
	assert.Equal(t, domain.NodeTypeChoice, ask.Type)
	assert.Equal(t, map[string]int{"affection": 4, "trust": 1}, ask.Choices[0].Deltas)
	assert.Nil(t, ask.Choices[1].Deltas)

	end, _ := tree.Node("end")
	assert.Equal(t, domain.NodeTypeEnd, end.Type)
}

func TestCompile_JSON(t *testing.T) {
	doc := `{"title": "Tiny", "nodes": [
		{"id": "a", "type": "text", "text": "Hello", "next": "b"},
		{"id": "b", "type": "end"}
	]}`
	tree, err := compiler.NewParser().Compile([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "a", tree.Start())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing id", "nodes:\n  - text: hi\n", compiler.ErrNodeMissingID},
		{"unknown type", "nodes:\n  - id: a\n    type: jump\n", compiler.ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.NewParser().Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := compiler.NewParser().Parse([]byte("title: x\ncolour: red\n"))
	assert.ErrorContains(t, err, "colour", "strict parsing rejects unknown keys")

	_, err = (&compiler.Parser{}).Parse([]byte("title: x\ncolour: red\n"))
	assert.NoError(t, err)
}

func TestCompile_EmptyDocument(t *testing.T) {
	_, err := compiler.NewParser().Compile(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyGraph)
}

func TestCompileFile_ReturnsUncheckedTreeOnValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - id: a\n    text: hi\n    next: lost\n"), 0o644))

	tree, err := compiler.CompileFile(path)
	assert.ErrorIs(t, err, domain.ErrUnknownNext)
	require.NotNil(t, tree)
	assert.Equal(t, 1, tree.Len())

	_, err = compiler.CompileFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read dialogue")
}
