package domain_test

import (
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestFishDef_ArtForAffection(t *testing.T) {
	f := &domain.FishDef{ArtHappy: "happy", ArtNeutral: "neutral", ArtSad: "sad"}

	assert.Equal(t, "sad", f.ArtForAffection(0))
	assert.Equal(t, "sad", f.ArtForAffection(10))
	assert.Equal(t, "neutral", f.ArtForAffection(11))
	assert.Equal(t, "neutral", f.ArtForAffection(20))
	assert.Equal(t, "happy", f.ArtForAffection(21))
}

func TestFishDef_DialogueForDate(t *testing.T) {
	a := domain.NewTreeUnchecked("a", "s", nil, []domain.Node{domain.End("s")})
	b := domain.NewTreeUnchecked("b", "s", nil, []domain.Node{domain.End("s")})
	f := &domain.FishDef{Name: "Coral", Dialogues: []*domain.Tree{a, b}}

	assert.Same(t, a, f.DialogueForDate(0))
	assert.Same(t, b, f.DialogueForDate(1))
	assert.Same(t, a, f.DialogueForDate(4))
	assert.Same(t, a, f.DialogueForDate(-1))
}

func TestFallbackDialogue(t *testing.T) {
	f := &domain.FishDef{Name: "Coral"}
	tree := f.DialogueForDate(0)

	assert.Equal(t, "Date with Coral", tree.Title())
	_, err := domain.NewTree(tree.Title(), tree.Start(), tree.Speakers(), tree.Nodes())
	assert.NoError(t, err, "generated dialogue is well formed")

	q, ok := tree.Node("q1")
	assert.True(t, ok)
	assert.Equal(t, 3, q.Choices[0].Deltas[domain.AffectionVar])
	assert.Equal(t, 2, q.Choices[1].Deltas[domain.AffectionVar])
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#ff991a", domain.Color{R: 1, G: 0.6, B: 0.1, A: 1}.Hex())
	assert.Equal(t, "#000000", domain.Color{R: -1}.Hex())
}
