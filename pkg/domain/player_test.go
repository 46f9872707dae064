package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{-3, "Stranger"},
		{0, "Stranger"},
		{1, "Acquaintance"},
		{5, "Acquaintance"},
		{6, "Friend"},
		{15, "Friend"},
		{16, "Close Friend"},
		{25, "Close Friend"},
		{26, "Romantic Interest"},
		{40, "Romantic Interest"},
		{41, "Soulmate"},
		{99, "Soulmate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.RelationshipLabel(tt.score), "score %d", tt.score)
	}
}

func TestPlayerState_Progress(t *testing.T) {
	p := domain.NewPlayerState()
	bubbles := domain.BuiltinID(domain.Bubbles)
	coral := domain.PluginID("coral")

	assert.Equal(t, 1, p.CurrentDay)
	assert.False(t, p.HasCaught(bubbles))

	p.AddCatch(bubbles, "Sunny Shallows", domain.SizeLarge)
	p.AddCatch(bubbles, "Sunny Shallows", domain.SizeSmall)
	assert.True(t, p.HasCaught(bubbles))
	assert.Equal(t, 2, p.CatchCount(bubbles))

	p.AddAffection(coral, -5)
	assert.Equal(t, 0, p.Relationship(coral), "affection never drops below zero")

	p.CommitDate(bubbles, 12)
	assert.Equal(t, 12, p.Relationship(bubbles))
	assert.Equal(t, 1, p.DateCount(bubbles))
	assert.Equal(t, 1, p.DatesCompleted)
	assert.Equal(t, 2, p.CurrentDay)
	assert.False(t, p.HasWon())

	p.CommitDate(bubbles, 29)
	assert.True(t, p.HasWon())

	id, score, ok := p.Closest()
	require.True(t, ok)
	assert.Equal(t, bubbles, id)
	assert.Equal(t, 41, score)
}

func TestPlayerState_Achievements(t *testing.T) {
	p := domain.NewPlayerState()
	assert.True(t, p.Unlock("ACH_FIRST_CATCH"))
	assert.False(t, p.Unlock("ACH_FIRST_CATCH"))
	assert.True(t, p.HasAchievement("ACH_FIRST_CATCH"))
	assert.Len(t, p.Achievements, 1)
}

func TestPlayerState_JSON(t *testing.T) {
	p := domain.NewPlayerState()
	p.AddCatch(domain.PluginID("coral"), "Coral's Pond", domain.SizeMedium)
	p.CommitDate(domain.BuiltinID(domain.Gill), 7)
	p.CommitDate(domain.PluginID("coral"), 3)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"plugin:coral":3`)
	assert.Contains(t, string(data), `"gill":7`)
	assert.Contains(t, string(data), `"size":"Medium"`)

	var back domain.PlayerState
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, &back)
}

func TestPlayerState_NormalizePartialSave(t *testing.T) {
	var p domain.PlayerState
	require.NoError(t, json.Unmarshal([]byte(`{"dates_completed": 2}`), &p))
	p.Normalize()

	assert.Equal(t, 1, p.CurrentDay)
	assert.NotNil(t, p.Relationships)
	assert.NotPanics(t, func() { p.CommitDate(domain.BuiltinID(domain.Marina), 1) })
}
