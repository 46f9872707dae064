package fishdating_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quinnjr/fish-dating-simulator"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/dsl"
	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coralScript = `
local d = new_dialogue("Reef Walk")
d:speaker("coral", "Coral")
d:text("start", "coral", "The reef is lovely today.", "ask")
d:choice("ask", "Coral waits for your answer.", {
	{ text = "It really is", next = "end", affection = 4 },
	{ text = "Meh", next = "end" },
})
d:end_node("end")

register_fish({
	id = "coral",
	name = "Coral",
	species = "Angelfish",
	dates = { d },
})
`

func TestLoad_BuiltinsAndPlugins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coral.lua"), []byte(coralScript), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.lua"), []byte(`this is not lua`), 0o644))

	metrics := observability.NewMetrics()
	sim := fishdating.Load(context.Background(), dir, fishdating.WithMetrics(metrics))

	assert.Equal(t, []string{"coral"}, sim.Report.Loaded())
	assert.Len(t, sim.Report.Failed(), 1)
	assert.Len(t, sim.Catalog.All(), 4)

	r := sim.Runner(domain.PluginID("coral"), 0)
	assert.Equal(t, "The reef is lovely today.", r.Current().Text)
	require.NoError(t, r.Advance())
	require.NoError(t, r.SelectChoice(0))
	assert.True(t, r.Ended())
	assert.Equal(t, 4, r.Value(domain.AffectionVar))
}

func TestLoad_NoPluginDir(t *testing.T) {
	sim := fishdating.Load(context.Background(), "")
	assert.Len(t, sim.Catalog.All(), 3)
	assert.Empty(t, sim.Report.Scripts)

	missing := fishdating.Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Len(t, missing.Catalog.All(), 3)
	assert.NoError(t, missing.Report.Err)
}

func TestSimulator_UnknownFishGetsFallbackDate(t *testing.T) {
	sim := fishdating.Load(context.Background(), "")
	r := sim.Runner(domain.PluginID("ghost"), 0)
	assert.Equal(t, "Hi there! I'm ghost. Thanks for taking me out!", r.Current().Text)
}

func TestNewRunner_MissingStartIsEnded(t *testing.T) {
	tree := dsl.New("nowhere").Text("a", "", "unreachable", "").BuildUnchecked()
	r := fishdating.NewRunner(tree)
	assert.True(t, r.Ended())
	assert.Equal(t, domain.ViewEnded, r.Current().Kind)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, fishdating.Version)
	assert.NotContains(t, fishdating.Version, "\n")
}

func TestLoad_BundledPlugins(t *testing.T) {
	sim := fishdating.Load(context.Background(), "plugins")
	require.Zero(t, sim.Report.Problems())
	assert.Equal(t, []string{"coral"}, sim.Report.Loaded())

	def, ok := sim.Catalog.Lookup(domain.PluginID("coral"))
	require.True(t, ok)
	assert.Equal(t, "Coral Reef", def.PondName)
	assert.Len(t, def.Dialogues, 2)
}
