package plugin_test

import (
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFishRecord_Defaults(t *testing.T) {
	def, warnings, err := plugin.DecodeFishRecord(map[string]any{
		"id":      "coral",
		"name":    "Coral",
		"species": "Angelfish",
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, plugin.DefaultDescription, def.Description)
	assert.InDelta(t, 0.5, def.Difficulty, 1e-9)
	assert.Equal(t, domain.White, def.Color)
	assert.Equal(t, plugin.DefaultArt, def.ArtHappy)
	assert.Equal(t, plugin.DefaultArt, def.ArtNeutral)
	assert.Equal(t, plugin.DefaultArt, def.ArtSad)
	assert.Equal(t, plugin.DefaultArtSmall, def.ArtSmall)
	assert.Equal(t, plugin.DefaultDateLocation, def.DateLocation)
	assert.Equal(t, plugin.DefaultDateSceneArt, def.DateSceneArt)
	assert.Equal(t, "Coral's Pond", def.PondName)
	assert.Empty(t, def.Dialogues)
}

func TestDecodeFishRecord_Fields(t *testing.T) {
	def, _, err := plugin.DecodeFishRecord(map[string]any{
		"id":            "coral",
		"name":          "Coral",
		"species":       "Angelfish",
		"description":   "Loves anemones.",
		"difficulty":    float64(1),
		"color":         []any{0.2, 0.4, 0.6},
		"art_happy":     "happy",
		"pond_name":     "Anemone Garden",
		"date_location": "The Kelp Bar",
	})
	require.NoError(t, err)

	assert.Equal(t, "Loves anemones.", def.Description)
	assert.InDelta(t, 1.0, def.Difficulty, 1e-9)
	assert.Equal(t, domain.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}, def.Color)
	assert.Equal(t, "happy", def.ArtHappy)
	assert.Equal(t, plugin.DefaultArt, def.ArtSad)
	assert.Equal(t, "Anemone Garden", def.PondName)
	assert.Equal(t, "The Kelp Bar", def.DateLocation)
}

func TestDecodeFishRecord_Coercion(t *testing.T) {
	tests := []struct {
		name       string
		difficulty any
		color      any
		wantDiff   float64
		wantColor  domain.Color
	}{
		{"int difficulty", 1, nil, 1, domain.White},
		{"clamped high", 7.5, nil, 1, domain.White},
		{"clamped low", -2.0, nil, 0, domain.White},
		{"wrong type", "hard", nil, 0.5, domain.White},
		{"rgba", nil, []any{0.1, 0.2, 0.3, 0.4}, 0.5, domain.Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}},
		{"too short", nil, []any{0.1, 0.2}, 0.5, domain.White},
		{"bad component", nil, []any{0.1, "x", 0.3}, 0.5, domain.Color{R: 0.1, G: 1, B: 0.3, A: 1}},
		{"not a list", nil, "red", 0.5, domain.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"id": "x", "name": "X", "species": "Y"}
			if tt.difficulty != nil {
				raw["difficulty"] = tt.difficulty
			}
			if tt.color != nil {
				raw["color"] = tt.color
			}
			def, _, err := plugin.DecodeFishRecord(raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantDiff, def.Difficulty, 1e-9)
			assert.Equal(t, tt.wantColor, def.Color)
		})
	}
}

func TestDecodeFishRecord_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		raw    map[string]any
		field  string
		reason string
	}{
		{"missing id", map[string]any{"name": "A", "species": "B"}, "id", "missing required field"},
		{"missing name", map[string]any{"id": "a", "species": "B"}, "name", "missing required field"},
		{"missing species", map[string]any{"id": "a", "name": "A"}, "species", "missing required field"},
		{"numeric species", map[string]any{"id": "a", "name": "A", "species": 4.0}, "species", "must be a string"},
		{"empty id", map[string]any{"id": "", "name": "A", "species": "B"}, "id", "must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := plugin.DecodeFishRecord(tt.raw)
			var recErr *plugin.RecordError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, tt.field, recErr.Field)
			assert.Equal(t, tt.reason, recErr.Reason)
		})
	}
}
